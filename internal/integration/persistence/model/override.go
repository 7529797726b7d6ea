// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// OverrideModel represents the fixed_cost_overrides table in the database.
// An occurrence has at most one override.
type OverrideModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	FixedCostID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_fixed_cost_occurrence"`
	OriginalDate time.Time        `gorm:"type:date;not null;uniqueIndex:idx_fixed_cost_occurrence"`
	NewDate      *time.Time       `gorm:"type:date"`
	NewAmount    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Skipped      bool             `gorm:"not null;default:false"`
	Notes        *string          `gorm:"type:text"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
}

// TableName returns the table name for the OverrideModel.
func (OverrideModel) TableName() string {
	return "fixed_cost_overrides"
}

// ToEntity converts an OverrideModel to a domain Override entity.
func (m *OverrideModel) ToEntity() *entity.Override {
	return &entity.Override{
		ID:           m.ID,
		FixedCostID:  m.FixedCostID,
		OriginalDate: calendar.Normalize(m.OriginalDate),
		NewDate:      normalizePtr(m.NewDate),
		NewAmount:    m.NewAmount,
		Skipped:      m.Skipped,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// OverrideFromEntity creates an OverrideModel from a domain Override entity.
func OverrideFromEntity(o *entity.Override) *OverrideModel {
	return &OverrideModel{
		ID:           o.ID,
		FixedCostID:  o.FixedCostID,
		OriginalDate: calendar.Normalize(o.OriginalDate),
		NewDate:      normalizePtr(o.NewDate),
		NewAmount:    o.NewAmount,
		Skipped:      o.Skipped,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
