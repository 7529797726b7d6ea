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

func TestSimulationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSimulationRepository(newTestDB(t))

	userID := uuid.New()
	interval := entity.RhythmMonthly
	end := day(2025, time.December, 31)
	hire := entity.NewSimulation(userID, "Neue Stelle", money("6500"), entity.DirectionOutgoing, day(2025, time.July, 25), true, &interval, &end, nil)
	grant := entity.NewSimulation(userID, "Förderbeitrag", money("20000"), entity.DirectionIncoming, day(2025, time.June, 1), false, nil, nil, nil)
	require.NoError(t, repo.Create(ctx, hire))
	require.NoError(t, repo.Create(ctx, grant))

	simulations, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, simulations, 2)
	assert.Equal(t, grant.ID, simulations[0].ID)
	assert.Nil(t, simulations[0].Interval)

	found := simulations[1]
	require.NotNil(t, found.Interval)
	assert.Equal(t, entity.RhythmMonthly, *found.Interval)
	assert.True(t, found.Active)

	found.Active = false
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, hire.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)

	require.NoError(t, repo.Delete(ctx, hire.ID))
	_, err = repo.FindByID(ctx, hire.ID)
	assert.ErrorIs(t, err, domainerror.ErrSimulationNotFound)
}
