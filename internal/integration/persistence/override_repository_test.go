package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

func TestOverrideRepository_UpsertReplacesByKey(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	fixedCosts := NewFixedCostRepository(db)
	repo := NewOverrideRepository(db)

	fc := entity.NewFixedCost(uuid.New(), "Miete", money("2000"), entity.RhythmMonthly, day(2025, time.January, 31), nil, nil)
	require.NoError(t, fixedCosts.Create(ctx, fc))

	original := day(2025, time.March, 28)
	moved := day(2025, time.April, 2)
	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(fc.ID, original, &moved, nil, false, nil)))

	reduced := money("1500")
	note := "Mietzinsreduktion"
	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(fc.ID, original, nil, &reduced, false, &note)))

	all, err := repo.FindByFixedCost(ctx, fc.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)

	found, err := repo.FindByKey(ctx, fc.ID, original)
	require.NoError(t, err)
	assert.Nil(t, found.NewDate)
	require.NotNil(t, found.NewAmount)
	assert.True(t, reduced.Equal(*found.NewAmount))
	require.NotNil(t, found.Notes)
	assert.Equal(t, note, *found.Notes)
	assert.Equal(t, original, found.OriginalDate)
}

func TestOverrideRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	fixedCosts := NewFixedCostRepository(db)
	repo := NewOverrideRepository(db)

	userID := uuid.New()
	mine := entity.NewFixedCost(userID, "Miete", money("2000"), entity.RhythmMonthly, day(2025, time.January, 1), nil, nil)
	theirs := entity.NewFixedCost(uuid.New(), "Miete", money("2000"), entity.RhythmMonthly, day(2025, time.January, 1), nil, nil)
	require.NoError(t, fixedCosts.Create(ctx, mine))
	require.NoError(t, fixedCosts.Create(ctx, theirs))

	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(mine.ID, day(2025, time.March, 1), nil, nil, true, nil)))
	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(mine.ID, day(2025, time.February, 1), nil, nil, true, nil)))
	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(theirs.ID, day(2025, time.February, 1), nil, nil, true, nil)))

	overrides, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, overrides, 2)
	assert.Equal(t, day(2025, time.February, 1), overrides[0].OriginalDate)
	assert.Equal(t, day(2025, time.March, 1), overrides[1].OriginalDate)
	for _, o := range overrides {
		assert.Equal(t, mine.ID, o.FixedCostID)
	}
}

func TestOverrideRepository_DeleteByKey(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	fixedCosts := NewFixedCostRepository(db)
	repo := NewOverrideRepository(db)

	fc := entity.NewFixedCost(uuid.New(), "Miete", money("2000"), entity.RhythmMonthly, day(2025, time.January, 1), nil, nil)
	require.NoError(t, fixedCosts.Create(ctx, fc))
	require.NoError(t, repo.Upsert(ctx, entity.NewOverride(fc.ID, day(2025, time.March, 1), nil, nil, true, nil)))

	require.NoError(t, repo.DeleteByKey(ctx, fc.ID, day(2025, time.March, 1)))

	_, err := repo.FindByKey(ctx, fc.ID, day(2025, time.March, 1))
	assert.ErrorIs(t, err, domainerror.ErrOverrideNotFound)
	assert.ErrorIs(t, repo.DeleteByKey(ctx, fc.ID, day(2025, time.March, 1)), domainerror.ErrOverrideNotFound)
}
