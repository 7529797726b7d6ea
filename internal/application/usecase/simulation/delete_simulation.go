package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
)

// DeleteSimulationInput represents the input for simulation deletion.
type DeleteSimulationInput struct {
	SimulationID uuid.UUID
	UserID       uuid.UUID
}

// DeleteSimulationOutput represents the output of simulation deletion.
type DeleteSimulationOutput struct {
	Success bool
}

// DeleteSimulationUseCase handles simulation deletion.
type DeleteSimulationUseCase struct {
	simulationRepo adapter.SimulationRepository
}

// NewDeleteSimulationUseCase creates a new DeleteSimulationUseCase instance.
func NewDeleteSimulationUseCase(simulationRepo adapter.SimulationRepository) *DeleteSimulationUseCase {
	return &DeleteSimulationUseCase{
		simulationRepo: simulationRepo,
	}
}

// Execute performs the simulation deletion.
func (uc *DeleteSimulationUseCase) Execute(ctx context.Context, input DeleteSimulationInput) (*DeleteSimulationOutput, error) {
	if _, err := findOwnedSimulation(ctx, uc.simulationRepo, input.SimulationID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.simulationRepo.Delete(ctx, input.SimulationID); err != nil {
		return nil, fmt.Errorf("failed to delete simulation: %w", err)
	}

	return &DeleteSimulationOutput{
		Success: true,
	}, nil
}
