// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceSnapshot records the account balance ("Kontostand") on a given day.
// The latest snapshot is the default starting balance for projections.
type BalanceSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewBalanceSnapshot creates a new BalanceSnapshot entity.
func NewBalanceSnapshot(userID uuid.UUID, date time.Time, amount decimal.Decimal) *BalanceSnapshot {
	return &BalanceSnapshot{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
