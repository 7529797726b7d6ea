// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceKind discriminates the record a ledger entry was derived from.
type SourceKind string

const (
	SourceKindTransaction SourceKind = "transaction"
	SourceKindFixedCost   SourceKind = "fixedCost"
	SourceKindSimulation  SourceKind = "simulation"
)

// Rank orders source kinds for same-day entries: transactions first, simulations last.
func (k SourceKind) Rank() int {
	switch k {
	case SourceKindTransaction:
		return 0
	case SourceKindFixedCost:
		return 1
	case SourceKindSimulation:
		return 2
	default:
		return 3
	}
}

// LedgerEntry is one dated, signed cashflow in a projection.
// Entries are derived on every projection and never persisted.
type LedgerEntry struct {
	Date           time.Time
	OriginalDate   *time.Time // Scheduled or booked date when Date was moved
	Amount         decimal.Decimal // Positive inflow, negative outflow
	Details        string
	Category       string
	RunningBalance decimal.Decimal
	SourceKind     SourceKind
	SourceID       uuid.UUID
}
