package projection

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// Options control which records take part in a projection.
type Options struct {
	// IncludeSimulations adds simulated transactions and active simulations.
	IncludeSimulations bool `json:"include_simulations"`
	// Today is the reference day for past-due shifting. The zero value
	// disables shifting regardless of ShiftPastDue.
	Today time.Time `json:"today"`
	// ShiftPastDue re-dates uncollected incoming invoices dated before Today.
	ShiftPastDue bool `json:"shift_past_due"`
}

// LedgerInput is the full input of a projection.
type LedgerInput struct {
	Transactions    []*entity.Transaction  `json:"transactions"`
	FixedCosts      []*entity.FixedCost    `json:"fixed_costs"`
	Overrides       []*entity.Override     `json:"overrides"`
	Simulations     []*entity.Simulation   `json:"simulations"`
	CategoryRules   []*entity.CategoryRule `json:"category_rules"`
	StartingBalance decimal.Decimal        `json:"starting_balance"`
	WindowStart     time.Time              `json:"window_start"`
	WindowEnd       time.Time              `json:"window_end"`
	Options         Options                `json:"options"`
}

// LedgerResult is the projected ledger plus the records left out of it.
type LedgerResult struct {
	Entries []entity.LedgerEntry `json:"entries"`
	Issues  []Issue              `json:"issues"`
}

// ClosingBalance returns the running balance after the last entry, or
// startingBalance when the ledger is empty.
func (r *LedgerResult) ClosingBalance(startingBalance decimal.Decimal) decimal.Decimal {
	if len(r.Entries) == 0 {
		return startingBalance
	}
	return r.Entries[len(r.Entries)-1].RunningBalance
}

// BuildLedger merges transactions, fixed cost occurrences and simulations
// within [WindowStart, WindowEnd] into one chronological ledger with running
// balances.
//
// Entries are ordered by date, then transactions before fixed costs before
// simulations, then input order. Identical input always yields an identical
// ledger. Records that cannot be projected are skipped and reported in
// LedgerResult.Issues.
func BuildLedger(input LedgerInput) LedgerResult {
	windowStart := calendar.Normalize(input.WindowStart)
	windowEnd := calendar.Normalize(input.WindowEnd)

	result := LedgerResult{
		Entries: []entity.LedgerEntry{},
		Issues:  []Issue{},
	}

	categorizer := NewCategorizer(input.CategoryRules)
	for _, txn := range input.Transactions {
		if txn == nil {
			continue
		}
		entry, ok, err := transactionEntry(txn, input.Options, categorizer)
		if err != nil {
			result.Issues = append(result.Issues, newIssue(entity.SourceKindTransaction, txn.ID, err))
			continue
		}
		if ok && calendar.Within(entry.Date, windowStart, windowEnd) {
			result.Entries = append(result.Entries, entry)
		}
	}

	overrides := NewOverrideIndex(input.Overrides)
	for _, fc := range input.FixedCosts {
		if fc == nil {
			continue
		}
		entries, err := ExpandOccurrences(fc, windowStart, windowEnd, overrides)
		if err != nil {
			result.Issues = append(result.Issues, newIssue(entity.SourceKindFixedCost, fc.ID, err))
			continue
		}
		result.Entries = append(result.Entries, entries...)
	}

	if input.Options.IncludeSimulations {
		for _, sim := range input.Simulations {
			if sim == nil || !sim.Active {
				continue
			}
			entries, err := ExpandSimulation(sim, windowStart, windowEnd)
			if err != nil {
				result.Issues = append(result.Issues, newIssue(entity.SourceKindSimulation, sim.ID, err))
				continue
			}
			result.Entries = append(result.Entries, entries...)
		}
	}

	sortEntries(result.Entries)
	applyRunningBalance(result.Entries, input.StartingBalance)

	return result
}

// transactionEntry converts a transaction into its ledger entry. The second
// return value is false when the transaction is excluded by the options.
func transactionEntry(txn *entity.Transaction, opts Options, categorizer Categorizer) (entity.LedgerEntry, bool, error) {
	switch {
	case txn.Date.IsZero():
		return entity.LedgerEntry{}, false, ErrMissingDate
	case txn.Amount.IsNegative():
		return entity.LedgerEntry{}, false, ErrNegativeAmount
	case !txn.Direction.IsValid():
		return entity.LedgerEntry{}, false, fmt.Errorf("%w: %q", ErrUnknownDirection, txn.Direction)
	}

	if txn.IsSimulation && !opts.IncludeSimulations {
		return entity.LedgerEntry{}, false, nil
	}

	booked := calendar.Normalize(txn.Date)
	date := booked
	if opts.ShiftPastDue && !opts.Today.IsZero() && IsPastDue(txn, opts.Today) {
		date = ProjectPastDue(booked, opts.Today)
	}

	return entity.LedgerEntry{
		Date:         date,
		OriginalDate: movedFrom(booked, date),
		Amount:       txn.SignedAmount(),
		Details:      txn.Details,
		Category:     categorizer.Categorize(txn),
		SourceKind:   entity.SourceKindTransaction,
		SourceID:     txn.ID,
	}, true, nil
}

// sortEntries orders entries by date and source kind. The sort is stable so
// input order breaks the remaining ties.
func sortEntries(entries []entity.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].SourceKind.Rank() < entries[j].SourceKind.Rank()
	})
}

// applyRunningBalance sets RunningBalance[i] = RunningBalance[i-1] + Amount[i]
// with RunningBalance[-1] = startingBalance.
func applyRunningBalance(entries []entity.LedgerEntry, startingBalance decimal.Decimal) {
	balance := startingBalance
	for i := range entries {
		balance = balance.Add(entries[i].Amount)
		entries[i].RunningBalance = balance
	}
}
