// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction represents whether money flows into or out of the account.
type Direction string

const (
	DirectionIncoming Direction = "Incoming"
	DirectionOutgoing Direction = "Outgoing"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// Sign returns amount signed by direction: positive for incoming, negative for outgoing.
func (d Direction) Sign(amount decimal.Decimal) decimal.Decimal {
	if d == DirectionOutgoing {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// UncategorizedCategory is the ledger category for transactions no rule matched.
const UncategorizedCategory = "Unkategorisiert"

// Transaction represents a one-off cashflow event ("Buchung").
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Date         time.Time
	Amount       decimal.Decimal // Unsigned magnitude; Direction carries the sign
	Direction    Direction
	Details      string
	Category     string
	IsSimulation bool
	Settled      bool       // Invoice paid or collected
	FixedCostID  *uuid.UUID // Set when booked from a fixed cost occurrence
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	direction Direction,
	details string,
	category string,
	isSimulation bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		Amount:       amount,
		Direction:    direction,
		Details:      details,
		Category:     category,
		IsSimulation: isSimulation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SignedAmount returns the amount signed by the transaction's direction.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return t.Direction.Sign(t.Amount)
}

// IsOpen reports whether the transaction still awaits payment.
func (t *Transaction) IsOpen() bool {
	return !t.Settled && !t.IsSimulation
}
