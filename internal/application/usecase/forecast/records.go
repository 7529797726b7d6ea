// Package forecast contains the cashflow forecast and KPI use cases.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// Settings are the projection defaults from configuration.
type Settings struct {
	HorizonMonths      int
	IncludeSimulations bool
	ShiftPastDue       bool
}

// Repositories groups the stores a projection reads from.
type Repositories struct {
	Transactions  adapter.TransactionRepository
	FixedCosts    adapter.FixedCostRepository
	Overrides     adapter.OverrideRepository
	Simulations   adapter.SimulationRepository
	CategoryRules adapter.CategoryRuleRepository
	Balances      adapter.BalanceRepository
}

// records is everything stored for one user that feeds a projection.
type records struct {
	transactions  []*entity.Transaction
	fixedCosts    []*entity.FixedCost
	overrides     []*entity.Override
	simulations   []*entity.Simulation
	categoryRules []*entity.CategoryRule
	balance       *entity.BalanceSnapshot // nil when no balance was recorded
}

func (r Repositories) load(ctx context.Context, userID uuid.UUID) (*records, error) {
	var (
		rec records
		err error
	)

	if rec.transactions, err = r.Transactions.FindByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if rec.fixedCosts, err = r.FixedCosts.FindByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load fixed costs: %w", err)
	}
	if rec.overrides, err = r.Overrides.FindByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}
	if rec.simulations, err = r.Simulations.FindByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load simulations: %w", err)
	}
	if rec.categoryRules, err = r.CategoryRules.FindByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	rec.balance, err = r.Balances.FindLatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, domainerror.ErrBalanceNotFound) {
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}

	return &rec, nil
}

// snapshotBalance returns the latest recorded balance, or zero.
func (r *records) snapshotBalance() decimal.Decimal {
	if r.balance == nil {
		return decimal.Zero
	}
	return r.balance.Amount
}

// projectedInput assembles the projection input for [start, end]. Without an
// explicit starting balance the ledger starts at the latest snapshot, held as
// the balance at the start of its day, so every entry between the snapshot
// and start is replayed. Use carryInto to split those entries off.
func (r *records) projectedInput(explicit *decimal.Decimal, start, end time.Time, opts projection.Options) projection.LedgerInput {
	if explicit != nil {
		return r.ledgerInput(*explicit, start, end, opts)
	}

	ledgerStart := start
	if r.balance != nil && r.balance.Date.Before(start) {
		ledgerStart = calendar.Normalize(r.balance.Date)
	}
	return r.ledgerInput(r.snapshotBalance(), ledgerStart, end, opts)
}

// carryInto returns the balance carried into start and the entries dated on
// or after it.
func carryInto(entries []entity.LedgerEntry, startingBalance decimal.Decimal, start time.Time) (decimal.Decimal, []entity.LedgerEntry) {
	balance := startingBalance
	first := 0
	for first < len(entries) && entries[first].Date.Before(start) {
		balance = entries[first].RunningBalance
		first++
	}
	return balance, entries[first:]
}

// ledgerInput assembles the projection input for a window.
func (r *records) ledgerInput(startingBalance decimal.Decimal, start, end time.Time, opts projection.Options) projection.LedgerInput {
	return projection.LedgerInput{
		Transactions:    r.transactions,
		FixedCosts:      r.fixedCosts,
		Overrides:       r.overrides,
		Simulations:     r.simulations,
		CategoryRules:   r.categoryRules,
		StartingBalance: startingBalance,
		WindowStart:     start,
		WindowEnd:       end,
		Options:         opts,
	}
}

// logIssues reports records left out of a projection.
func logIssues(userID uuid.UUID, issues []projection.Issue) {
	for _, issue := range issues {
		slog.Warn("Projection skipped record",
			"user_id", userID,
			"source_kind", issue.SourceKind,
			"source_id", issue.SourceID,
			"reason", issue.Reason,
		)
	}
}
