// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Override is a per-occurrence exception to a fixed cost's schedule.
// It is keyed by (FixedCostID, OriginalDate) and can only modify or
// suppress an occurrence the rhythm generates, never add one.
type Override struct {
	ID           uuid.UUID
	FixedCostID  uuid.UUID
	OriginalDate time.Time
	NewDate      *time.Time
	NewAmount    *decimal.Decimal
	Skipped      bool
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOverride creates a new Override entity.
func NewOverride(
	fixedCostID uuid.UUID,
	originalDate time.Time,
	newDate *time.Time,
	newAmount *decimal.Decimal,
	skipped bool,
	notes *string,
) *Override {
	now := time.Now().UTC()

	return &Override{
		ID:           uuid.New(),
		FixedCostID:  fixedCostID,
		OriginalDate: originalDate,
		NewDate:      newDate,
		NewAmount:    newAmount,
		Skipped:      skipped,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
