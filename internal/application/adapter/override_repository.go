// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// OverrideRepository defines the interface for fixed cost override persistence.
// Overrides are unique per (fixed cost, original date).
type OverrideRepository interface {
	// Upsert creates the override or replaces the one with the same key.
	Upsert(ctx context.Context, override *entity.Override) error

	// FindByKey retrieves the override of one occurrence.
	FindByKey(ctx context.Context, fixedCostID uuid.UUID, originalDate time.Time) (*entity.Override, error)

	// FindByFixedCost retrieves all overrides of a fixed cost ordered by original date.
	FindByFixedCost(ctx context.Context, fixedCostID uuid.UUID) ([]*entity.Override, error)

	// FindByUser retrieves the overrides of all fixed costs owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Override, error)

	// DeleteByKey removes the override of one occurrence.
	DeleteByKey(ctx context.Context, fixedCostID uuid.UUID, originalDate time.Time) error
}
