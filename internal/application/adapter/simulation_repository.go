// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// SimulationRepository defines the interface for simulation persistence operations.
type SimulationRepository interface {
	// Create creates a new simulation in the database.
	Create(ctx context.Context, simulation *entity.Simulation) error

	// FindByID retrieves a simulation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error)

	// FindByUser retrieves all simulations of a user ordered by date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Simulation, error)

	// Update updates an existing simulation in the database.
	Update(ctx context.Context, simulation *entity.Simulation) error

	// Delete soft-deletes a simulation from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
