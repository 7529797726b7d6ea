package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence"
	"github.com/liq-planung/backend/internal/integration/persistence/testdb"
)

func newRepo(t *testing.T) adapter.SimulationRepository {
	return persistence.NewSimulationRepository(testdb.Open(t))
}

func simulationCode(t *testing.T, err error) domainerror.SimulationErrorCode {
	t.Helper()
	var simErr *domainerror.SimulationError
	require.True(t, errors.As(err, &simErr), "expected SimulationError, got %v", err)
	return simErr.Code
}

func strPtr(s string) *string { return &s }

func TestCreateSimulation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	userID := uuid.New()

	output, err := NewCreateSimulationUseCase(repo).Execute(ctx, CreateSimulationInput{
		UserID:    userID,
		Name:      "Neue Stelle",
		Amount:    decimal.NewFromInt(6500),
		Direction: entity.DirectionOutgoing,
		Date:      calendar.Date(2025, time.July, 25),
		Recurring: true,
		Interval:  strPtr("monatlich"),
	})
	require.NoError(t, err)
	assert.True(t, output.Simulation.Active)
	require.NotNil(t, output.Simulation.Interval)
	assert.Equal(t, entity.RhythmMonthly, *output.Simulation.Interval)

	list, err := NewListSimulationsUseCase(repo).Execute(ctx, ListSimulationsInput{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, list.Simulations, 1)
}

func TestCreateSimulation_Validation(t *testing.T) {
	uc := NewCreateSimulationUseCase(newRepo(t))
	valid := CreateSimulationInput{
		UserID:    uuid.New(),
		Name:      "Förderbeitrag",
		Amount:    decimal.NewFromInt(20000),
		Direction: entity.DirectionIncoming,
		Date:      calendar.Date(2025, time.June, 1),
	}

	tests := []struct {
		name   string
		modify func(in *CreateSimulationInput)
		code   domainerror.SimulationErrorCode
	}{
		{"recurring without interval", func(in *CreateSimulationInput) { in.Recurring = true }, domainerror.ErrCodeSimulationIntervalRequired},
		{"unknown interval", func(in *CreateSimulationInput) { in.Interval = strPtr("täglich") }, domainerror.ErrCodeInvalidSimulation},
		{"negative amount", func(in *CreateSimulationInput) { in.Amount = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidSimulation},
		{"unknown direction", func(in *CreateSimulationInput) { in.Direction = "" }, domainerror.ErrCodeInvalidSimulation},
		{"missing name", func(in *CreateSimulationInput) { in.Name = "" }, domainerror.ErrCodeInvalidSimulation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.modify(&input)
			_, err := uc.Execute(context.Background(), input)
			assert.Equal(t, tt.code, simulationCode(t, err))
		})
	}
}

func TestUpdateSimulation_ToggleActive(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	userID := uuid.New()
	sim := entity.NewSimulation(userID, "Förderbeitrag", decimal.NewFromInt(20000), entity.DirectionIncoming, calendar.Date(2025, time.June, 1), false, nil, nil, nil)
	require.NoError(t, repo.Create(ctx, sim))

	uc := NewUpdateSimulationUseCase(repo)
	inactive := false

	output, err := uc.Execute(ctx, UpdateSimulationInput{SimulationID: sim.ID, UserID: userID, Active: &inactive})
	require.NoError(t, err)
	assert.False(t, output.Simulation.Active)

	stored, err := repo.FindByID(ctx, sim.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	_, err = uc.Execute(ctx, UpdateSimulationInput{SimulationID: sim.ID, UserID: uuid.New(), Active: &inactive})
	assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationCode(t, err))
}

func TestDeleteSimulation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	userID := uuid.New()
	sim := entity.NewSimulation(userID, "Förderbeitrag", decimal.NewFromInt(20000), entity.DirectionIncoming, calendar.Date(2025, time.June, 1), false, nil, nil, nil)
	require.NoError(t, repo.Create(ctx, sim))

	uc := NewDeleteSimulationUseCase(repo)
	_, err := uc.Execute(ctx, DeleteSimulationInput{SimulationID: sim.ID, UserID: userID})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, DeleteSimulationInput{SimulationID: sim.ID, UserID: userID})
	assert.Equal(t, domainerror.ErrCodeSimulationNotFound, simulationCode(t, err))
}
