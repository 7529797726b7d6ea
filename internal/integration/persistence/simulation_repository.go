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

// simulationRepository implements the adapter.SimulationRepository interface.
type simulationRepository struct {
	db *gorm.DB
}

// NewSimulationRepository creates a new simulation repository instance.
func NewSimulationRepository(db *gorm.DB) adapter.SimulationRepository {
	return &simulationRepository{
		db: db,
	}
}

// Create creates a new simulation in the database.
func (r *simulationRepository) Create(ctx context.Context, simulation *entity.Simulation) error {
	return r.db.WithContext(ctx).Create(model.SimulationFromEntity(simulation)).Error
}

// FindByID retrieves a simulation by its ID.
func (r *simulationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Simulation, error) {
	var simulationModel model.SimulationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&simulationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSimulationNotFound
		}
		return nil, result.Error
	}
	return simulationModel.ToEntity(), nil
}

// FindByUser retrieves all simulations of a user ordered by date.
func (r *simulationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Simulation, error) {
	var simulationModels []model.SimulationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&simulationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	simulations := make([]*entity.Simulation, len(simulationModels))
	for i, sm := range simulationModels {
		simulations[i] = sm.ToEntity()
	}
	return simulations, nil
}

// Update updates an existing simulation in the database.
// Save writes zero values, so deactivating a simulation persists Active=false.
func (r *simulationRepository) Update(ctx context.Context, simulation *entity.Simulation) error {
	return r.db.WithContext(ctx).Save(model.SimulationFromEntity(simulation)).Error
}

// Delete soft-deletes a simulation from the database.
func (r *simulationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SimulationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSimulationNotFound
	}
	return nil
}
