// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence/model"
)

// overrideRepository implements the adapter.OverrideRepository interface.
type overrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new override repository instance.
func NewOverrideRepository(db *gorm.DB) adapter.OverrideRepository {
	return &overrideRepository{
		db: db,
	}
}

// Upsert creates the override or replaces the one with the same
// (fixed_cost_id, original_date) key. The stored ID of an existing row is kept.
func (r *overrideRepository) Upsert(ctx context.Context, override *entity.Override) error {
	overrideModel := model.OverrideFromEntity(override)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fixed_cost_id"}, {Name: "original_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"new_date", "new_amount", "skipped", "notes", "updated_at",
			}),
		}).
		Create(overrideModel)
	return result.Error
}

// FindByKey retrieves the override of one occurrence.
func (r *overrideRepository) FindByKey(ctx context.Context, fixedCostID uuid.UUID, originalDate time.Time) (*entity.Override, error) {
	var overrideModel model.OverrideModel
	result := r.db.WithContext(ctx).
		Where("fixed_cost_id = ? AND original_date = ?", fixedCostID, calendar.Normalize(originalDate)).
		First(&overrideModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOverrideNotFound
		}
		return nil, result.Error
	}
	return overrideModel.ToEntity(), nil
}

// FindByFixedCost retrieves all overrides of a fixed cost ordered by original date.
func (r *overrideRepository) FindByFixedCost(ctx context.Context, fixedCostID uuid.UUID) ([]*entity.Override, error) {
	var overrideModels []model.OverrideModel
	result := r.db.WithContext(ctx).
		Where("fixed_cost_id = ?", fixedCostID).
		Order("original_date ASC").
		Find(&overrideModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOverrideEntities(overrideModels), nil
}

// FindByUser retrieves the overrides of all live fixed costs owned by a user.
func (r *overrideRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Override, error) {
	var overrideModels []model.OverrideModel
	result := r.db.WithContext(ctx).
		Joins("JOIN fixed_costs ON fixed_costs.id = fixed_cost_overrides.fixed_cost_id").
		Where("fixed_costs.user_id = ? AND fixed_costs.deleted_at IS NULL", userID).
		Order("fixed_cost_overrides.original_date ASC").
		Find(&overrideModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toOverrideEntities(overrideModels), nil
}

// DeleteByKey removes the override of one occurrence.
func (r *overrideRepository) DeleteByKey(ctx context.Context, fixedCostID uuid.UUID, originalDate time.Time) error {
	result := r.db.WithContext(ctx).
		Where("fixed_cost_id = ? AND original_date = ?", fixedCostID, calendar.Normalize(originalDate)).
		Delete(&model.OverrideModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOverrideNotFound
	}
	return nil
}

func toOverrideEntities(models []model.OverrideModel) []*entity.Override {
	overrides := make([]*entity.Override, len(models))
	for i, om := range models {
		overrides[i] = om.ToEntity()
	}
	return overrides
}
