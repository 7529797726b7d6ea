// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// FixedCostModel represents the fixed_costs table in the database.
type FixedCostModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Rhythm    string          `gorm:"type:varchar(20);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   *time.Time      `gorm:"type:date"`
	Category  *string         `gorm:"type:varchar(100)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Overrides []OverrideModel `gorm:"foreignKey:FixedCostID;references:ID"`
}

// TableName returns the table name for the FixedCostModel.
func (FixedCostModel) TableName() string {
	return "fixed_costs"
}

// ToEntity converts a FixedCostModel to a domain FixedCost entity.
func (m *FixedCostModel) ToEntity() *entity.FixedCost {
	return &entity.FixedCost{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Rhythm:    entity.Rhythm(m.Rhythm),
		StartDate: calendar.Normalize(m.StartDate),
		EndDate:   normalizePtr(m.EndDate),
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FixedCostFromEntity creates a FixedCostModel from a domain FixedCost entity.
func FixedCostFromEntity(fc *entity.FixedCost) *FixedCostModel {
	return &FixedCostModel{
		ID:        fc.ID,
		UserID:    fc.UserID,
		Name:      fc.Name,
		Amount:    fc.Amount,
		Rhythm:    string(fc.Rhythm),
		StartDate: calendar.Normalize(fc.StartDate),
		EndDate:   normalizePtr(fc.EndDate),
		Category:  fc.Category,
		CreatedAt: fc.CreatedAt,
		UpdatedAt: fc.UpdatedAt,
	}
}

func normalizePtr(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	normalized := calendar.Normalize(*date)
	return &normalized
}
