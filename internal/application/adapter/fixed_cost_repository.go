// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// FixedCostRepository defines the interface for fixed cost persistence operations.
type FixedCostRepository interface {
	// Create creates a new fixed cost in the database.
	Create(ctx context.Context, fixedCost *entity.FixedCost) error

	// FindByID retrieves a fixed cost by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedCost, error)

	// FindByUser retrieves all fixed costs of a user ordered by start date.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedCost, error)

	// Update updates an existing fixed cost in the database.
	Update(ctx context.Context, fixedCost *entity.FixedCost) error

	// Delete soft-deletes a fixed cost and removes its overrides.
	Delete(ctx context.Context, id uuid.UUID) error
}
