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

// fixedCostRepository implements the adapter.FixedCostRepository interface.
type fixedCostRepository struct {
	db *gorm.DB
}

// NewFixedCostRepository creates a new fixed cost repository instance.
func NewFixedCostRepository(db *gorm.DB) adapter.FixedCostRepository {
	return &fixedCostRepository{
		db: db,
	}
}

// Create creates a new fixed cost in the database.
func (r *fixedCostRepository) Create(ctx context.Context, fixedCost *entity.FixedCost) error {
	return r.db.WithContext(ctx).Create(model.FixedCostFromEntity(fixedCost)).Error
}

// FindByID retrieves a fixed cost by its ID.
func (r *fixedCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedCost, error) {
	var fixedCostModel model.FixedCostModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&fixedCostModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedCostNotFound
		}
		return nil, result.Error
	}
	return fixedCostModel.ToEntity(), nil
}

// FindByUser retrieves all fixed costs of a user ordered by start date.
func (r *fixedCostRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedCost, error) {
	var fixedCostModels []model.FixedCostModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC, created_at ASC").
		Find(&fixedCostModels)
	if result.Error != nil {
		return nil, result.Error
	}

	fixedCosts := make([]*entity.FixedCost, len(fixedCostModels))
	for i, fm := range fixedCostModels {
		fixedCosts[i] = fm.ToEntity()
	}
	return fixedCosts, nil
}

// Update updates an existing fixed cost in the database.
func (r *fixedCostRepository) Update(ctx context.Context, fixedCost *entity.FixedCost) error {
	return r.db.WithContext(ctx).Save(model.FixedCostFromEntity(fixedCost)).Error
}

// Delete soft-deletes a fixed cost and removes its overrides.
func (r *fixedCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fixed_cost_id = ?", id).Delete(&model.OverrideModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.FixedCostModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrFixedCostNotFound
		}
		return nil
	})
}
