// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSimulationCategory is the ledger category for simulations without their own category.
const DefaultSimulationCategory = "Simulation"

// Simulation is a hypothetical cashflow that can be toggled on and off in
// projections without becoming financial fact.
type Simulation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Direction Direction
	Date      time.Time
	Recurring bool
	Interval  *Rhythm
	EndDate   *time.Time
	Active    bool
	Category  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSimulation creates a new, active Simulation entity.
func NewSimulation(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	direction Direction,
	date time.Time,
	recurring bool,
	interval *Rhythm,
	endDate *time.Time,
	category *string,
) *Simulation {
	now := time.Now().UTC()

	return &Simulation{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Direction: direction,
		Date:      date,
		Recurring: recurring,
		Interval:  interval,
		EndDate:   endDate,
		Active:    true,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LedgerCategory returns the category used for the simulation's ledger entries.
func (s *Simulation) LedgerCategory() string {
	if s.Category != nil && *s.Category != "" {
		return *s.Category
	}
	return DefaultSimulationCategory
}
