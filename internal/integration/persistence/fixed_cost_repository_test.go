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

func TestFixedCostRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewFixedCostRepository(newTestDB(t))

	userID := uuid.New()
	end := day(2026, time.May, 31)
	category := "Raumkosten"
	fc := entity.NewFixedCost(userID, "Miete Büro", money("2450.50"), entity.RhythmMonthly, day(2025, time.May, 31), &end, &category)
	require.NoError(t, repo.Create(ctx, fc))

	found, err := repo.FindByID(ctx, fc.ID)
	require.NoError(t, err)
	assert.Equal(t, fc.Name, found.Name)
	assert.Equal(t, entity.RhythmMonthly, found.Rhythm)
	assert.True(t, money("2450.50").Equal(found.Amount))
	assert.Equal(t, day(2025, time.May, 31), found.StartDate)
	require.NotNil(t, found.EndDate)
	assert.Equal(t, end, *found.EndDate)
	require.NotNil(t, found.Category)
	assert.Equal(t, category, *found.Category)

	found.Rhythm = entity.RhythmQuarterly
	found.EndDate = nil
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, fc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RhythmQuarterly, updated.Rhythm)
	assert.Nil(t, updated.EndDate)
}

func TestFixedCostRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewFixedCostRepository(newTestDB(t))

	userID := uuid.New()
	later := entity.NewFixedCost(userID, "Versicherung", money("600"), entity.RhythmQuarterly, day(2025, time.March, 31), nil, nil)
	earlier := entity.NewFixedCost(userID, "Miete", money("2000"), entity.RhythmMonthly, day(2025, time.January, 1), nil, nil)
	other := entity.NewFixedCost(uuid.New(), "Fremd", money("1"), entity.RhythmAnnual, day(2025, time.January, 1), nil, nil)
	for _, fc := range []*entity.FixedCost{later, earlier, other} {
		require.NoError(t, repo.Create(ctx, fc))
	}

	fixedCosts, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, fixedCosts, 2)
	assert.Equal(t, earlier.ID, fixedCosts[0].ID)
	assert.Equal(t, later.ID, fixedCosts[1].ID)
}

func TestFixedCostRepository_DeleteRemovesOverrides(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewFixedCostRepository(db)
	overrides := NewOverrideRepository(db)

	fc := entity.NewFixedCost(uuid.New(), "Leasing", money("350"), entity.RhythmMonthly, day(2025, time.January, 15), nil, nil)
	require.NoError(t, repo.Create(ctx, fc))
	require.NoError(t, overrides.Upsert(ctx, entity.NewOverride(fc.ID, day(2025, time.February, 15), nil, nil, true, nil)))

	require.NoError(t, repo.Delete(ctx, fc.ID))

	_, err := repo.FindByID(ctx, fc.ID)
	assert.ErrorIs(t, err, domainerror.ErrFixedCostNotFound)

	remaining, err := overrides.FindByFixedCost(ctx, fc.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.ErrorIs(t, repo.Delete(ctx, fc.ID), domainerror.ErrFixedCostNotFound)
}
