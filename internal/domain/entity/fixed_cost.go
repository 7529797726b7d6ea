// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultFixedCostCategory is the ledger category for fixed costs without their own category.
const DefaultFixedCostCategory = "Fixkosten"

// FixedCost represents a recurring outgoing payment ("Fixkosten").
type FixedCost struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal // Unsigned magnitude, always booked as outflow
	Rhythm    Rhythm
	StartDate time.Time
	EndDate   *time.Time // Inclusive; nil runs indefinitely
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFixedCost creates a new FixedCost entity.
func NewFixedCost(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	rhythm Rhythm,
	startDate time.Time,
	endDate *time.Time,
	category *string,
) *FixedCost {
	now := time.Now().UTC()

	return &FixedCost{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Rhythm:    rhythm,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LedgerCategory returns the category used for the fixed cost's ledger entries.
func (f *FixedCost) LedgerCategory() string {
	if f.Category != nil && *f.Category != "" {
		return *f.Category
	}
	return DefaultFixedCostCategory
}
