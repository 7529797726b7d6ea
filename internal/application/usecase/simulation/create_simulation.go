package simulation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// CreateSimulationInput represents the input for simulation creation.
type CreateSimulationInput struct {
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Direction entity.Direction
	Date      time.Time
	Recurring bool
	Interval  *string
	EndDate   *time.Time
	Category  *string
}

// CreateSimulationOutput represents the output of simulation creation.
type CreateSimulationOutput struct {
	Simulation *entity.Simulation
}

// CreateSimulationUseCase handles simulation creation logic.
type CreateSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewCreateSimulationUseCase creates a new CreateSimulationUseCase instance.
func NewCreateSimulationUseCase(simulationRepo adapter.SimulationRepository) *CreateSimulationUseCase {
	return &CreateSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation creation. New simulations are active.
func (uc *CreateSimulationUseCase) Execute(ctx context.Context, input CreateSimulationInput) (*CreateSimulationOutput, error) {
	interval, err := parseInterval(input.Interval)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if input.EndDate != nil {
		normalized := calendar.Normalize(*input.EndDate)
		endDate = &normalized
	}

	simulation := entity.NewSimulation(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Amount,
		input.Direction,
		calendar.Normalize(input.Date),
		input.Recurring,
		interval,
		endDate,
		input.Category,
	)

	if err := validateSimulation(simulation); err != nil {
		return nil, err
	}

	if err := uc.simulationRepo.Create(ctx, simulation); err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	return &CreateSimulationOutput{
		Simulation: simulation,
	}, nil
}
