package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// RunwayTrailingMonths is the number of full calendar months averaged for the burn rate.
const RunwayTrailingMonths = 3

// Net returns the sum of signed amounts of entries dated in [from, to].
func Net(ledger []entity.LedgerEntry, from, to time.Time) decimal.Decimal {
	from, to = calendar.Normalize(from), calendar.Normalize(to)

	total := decimal.Zero
	for _, e := range ledger {
		if calendar.Within(e.Date, from, to) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Runway is the number of months the balance lasts at the current burn rate.
// Infinite is set instead of Months when there is no burn.
type Runway struct {
	Months   decimal.Decimal
	Infinite bool
	Burn     decimal.Decimal // Average monthly outflow
}

// RunwayMonths divides currentBalance by the average absolute outflow of the
// three full calendar months before asOf's month. A zero burn yields the
// Infinite sentinel; a balance at or below zero yields zero months.
func RunwayMonths(currentBalance decimal.Decimal, ledger []entity.LedgerEntry, asOf time.Time) Runway {
	monthStart := calendar.StartOfMonth(asOf)
	from := calendar.AddMonths(monthStart, -RunwayTrailingMonths)
	to := monthStart.AddDate(0, 0, -1)

	outflow := decimal.Zero
	for _, e := range ledger {
		if e.Amount.IsNegative() && calendar.Within(e.Date, from, to) {
			outflow = outflow.Add(e.Amount.Abs())
		}
	}

	burn := outflow.Div(decimal.NewFromInt(RunwayTrailingMonths))
	if burn.IsZero() {
		return Runway{Infinite: true, Burn: decimal.Zero}
	}
	if !currentBalance.IsPositive() {
		return Runway{Months: decimal.Zero, Burn: burn.Round(2)}
	}
	return Runway{
		Months: currentBalance.Div(burn).Round(2),
		Burn:   burn.Round(2),
	}
}

// EndOfMonthForecast returns the running balance of the last entry dated on
// or before the end of asOf's month, or currentBalance when there is none.
// The ledger must be sorted by date, as BuildLedger returns it.
func EndOfMonthForecast(ledger []entity.LedgerEntry, asOf time.Time, currentBalance decimal.Decimal) decimal.Decimal {
	endOfMonth := calendar.EndOfMonth(asOf)

	forecast := currentBalance
	for _, e := range ledger {
		if e.Date.After(endOfMonth) {
			break
		}
		forecast = e.RunningBalance
	}
	return forecast
}

// OpenSummary counts and sums unsettled transactions.
type OpenSummary struct {
	Count int
	Sum   decimal.Decimal
}

// OpenAmounts summarizes the unsettled, non-simulated transactions of the given direction.
func OpenAmounts(transactions []*entity.Transaction, direction entity.Direction) OpenSummary {
	summary := OpenSummary{Sum: decimal.Zero}
	for _, txn := range transactions {
		if txn == nil || txn.Direction != direction || !txn.IsOpen() {
			continue
		}
		summary.Count++
		summary.Sum = summary.Sum.Add(txn.Amount.Abs())
	}
	return summary
}
