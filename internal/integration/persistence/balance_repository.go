// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence/model"
)

// balanceRepository implements the adapter.BalanceRepository interface.
type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new balance snapshot repository instance.
func NewBalanceRepository(db *gorm.DB) adapter.BalanceRepository {
	return &balanceRepository{
		db: db,
	}
}

// Create stores a new balance snapshot. Snapshots are append-only.
func (r *balanceRepository) Create(ctx context.Context, snapshot *entity.BalanceSnapshot) error {
	return r.db.WithContext(ctx).Create(model.BalanceSnapshotFromEntity(snapshot)).Error
}

// FindLatestByUser retrieves the snapshot with the latest date; for equal
// dates the most recently recorded one wins.
func (r *balanceRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.BalanceSnapshot, error) {
	var snapshotModel model.BalanceSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBalanceNotFound
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}
