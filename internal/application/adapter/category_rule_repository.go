// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// CategoryRuleRepository defines the interface for category rule persistence operations.
type CategoryRuleRepository interface {
	// Create creates a new category rule in the database.
	Create(ctx context.Context, rule *entity.CategoryRule) error

	// FindByID retrieves a category rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryRule, error)

	// FindByUser retrieves all category rules of a user, sorted by priority (descending).
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryRule, error)

	// Delete removes a category rule from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetMaxPriorityByUser gets the maximum priority value of the user's rules.
	GetMaxPriorityByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
