// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// BalanceRepository defines the interface for balance snapshot persistence.
type BalanceRepository interface {
	// Create stores a new balance snapshot.
	Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error

	// FindLatestByUser retrieves the snapshot with the latest date.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.BalanceSnapshot, error)
}
