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

// UpdateSimulationInput represents a partial simulation update.
// Toggling Active is the usual what-if switch.
type UpdateSimulationInput struct {
	SimulationID uuid.UUID
	UserID       uuid.UUID
	Name         *string
	Amount       *decimal.Decimal
	Direction    *entity.Direction
	Date         *time.Time
	Recurring    *bool
	Interval     *string
	EndDate      *time.Time
	ClearEndDate bool
	Active       *bool
	Category     *string
}

// UpdateSimulationOutput represents the output of a simulation update.
type UpdateSimulationOutput struct {
	Simulation *entity.Simulation
}

// UpdateSimulationUseCase handles simulation updates.
type UpdateSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewUpdateSimulationUseCase creates a new UpdateSimulationUseCase instance.
func NewUpdateSimulationUseCase(simulationRepo adapter.SimulationRepository) *UpdateSimulationUseCase {
	return &UpdateSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation update.
func (uc *UpdateSimulationUseCase) Execute(ctx context.Context, input UpdateSimulationInput) (*UpdateSimulationOutput, error) {
	simulation, err := findOwnedSimulation(ctx, uc.simulationRepo, input.SimulationID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		simulation.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		simulation.Amount = *input.Amount
	}
	if input.Direction != nil {
		simulation.Direction = *input.Direction
	}
	if input.Date != nil {
		simulation.Date = calendar.Normalize(*input.Date)
	}
	if input.Recurring != nil {
		simulation.Recurring = *input.Recurring
	}
	if input.Interval != nil {
		interval, err := parseInterval(input.Interval)
		if err != nil {
			return nil, err
		}
		simulation.Interval = interval
	}
	if input.ClearEndDate {
		simulation.EndDate = nil
	} else if input.EndDate != nil {
		endDate := calendar.Normalize(*input.EndDate)
		simulation.EndDate = &endDate
	}
	if input.Active != nil {
		simulation.Active = *input.Active
	}
	if input.Category != nil {
		simulation.Category = input.Category
	}

	if err := validateSimulation(simulation); err != nil {
		return nil, err
	}

	simulation.UpdatedAt = time.Now().UTC()
	if err := uc.simulationRepo.Update(ctx, simulation); err != nil {
		return nil, fmt.Errorf("failed to update simulation: %w", err)
	}

	return &UpdateSimulationOutput{
		Simulation: simulation,
	}, nil
}
