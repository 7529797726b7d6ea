package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// ListSimulationsInput represents the input for listing simulations.
type ListSimulationsInput struct {
	UserID uuid.UUID
}

// ListSimulationsOutput represents the output of listing simulations.
type ListSimulationsOutput struct {
	Simulations []*entity.Simulation
}

// ListSimulationsUseCase handles listing simulations.
type ListSimulationsUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewListSimulationsUseCase creates a new ListSimulationsUseCase instance.
func NewListSimulationsUseCase(simulationRepo adapter.SimulationRepository) *ListSimulationsUseCase {
	return &ListSimulationsUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute returns all simulations of the user, active or not.
func (uc *ListSimulationsUseCase) Execute(ctx context.Context, input ListSimulationsInput) (*ListSimulationsOutput, error) {
	simulations, err := uc.simulationRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}

	return &ListSimulationsOutput{
		Simulations: simulations,
	}, nil
}
