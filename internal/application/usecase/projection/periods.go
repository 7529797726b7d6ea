package projection

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// Granularity represents the bucket size of a period aggregation.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
)

// IsValid reports whether g is a supported granularity.
func (g Granularity) IsValid() bool {
	return g == GranularityMonthly || g == GranularityQuarterly
}

// monthAbbreviations holds the German month abbreviations used in period labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mär",
	time.April:     "Apr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Dez",
}

// PeriodInfo holds information about a single period.
type PeriodInfo struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// PeriodSummary aggregates the ledger entries of one period.
type PeriodSummary struct {
	PeriodInfo
	Inflow         decimal.Decimal
	Outflow        decimal.Decimal // Absolute value
	Net            decimal.Decimal
	ClosingBalance decimal.Decimal
	EntryCount     int
}

// GeneratePeriodLabel generates a human-readable label for a period.
// Formats:
// - Monthly: "{month_abbr} {year}" (e.g., "Mai 2025")
// - Quarterly: "Q{quarter} {year}" (e.g., "Q2 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	case GranularityQuarterly:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, date.Year())
	default:
		return calendar.FormatSwiss(date)
	}
}

// periodStart returns the first day of the period containing date.
func periodStart(date time.Time, granularity Granularity) time.Time {
	if granularity == GranularityQuarterly {
		quarter := (int(date.Month()) - 1) / 3
		return calendar.Date(date.Year(), time.Month(quarter*3+1), 1)
	}
	return calendar.StartOfMonth(date)
}

// periodMonths returns the number of months in one period.
func periodMonths(granularity Granularity) int {
	if granularity == GranularityQuarterly {
		return 3
	}
	return 1
}

// GeneratePeriodSeries generates all periods between startDate and endDate.
// This ensures continuous data for chart rendering with no gaps.
func GeneratePeriodSeries(startDate, endDate time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo
	end := calendar.Normalize(endDate)

	step := periodMonths(granularity)
	for current := periodStart(calendar.Normalize(startDate), granularity); !current.After(end); current = calendar.AddMonths(current, step) {
		periods = append(periods, PeriodInfo{
			PeriodStart: current,
			PeriodEnd:   calendar.AddMonths(current, step).AddDate(0, 0, -1),
			PeriodLabel: GeneratePeriodLabel(current, granularity),
		})
	}
	return periods
}

// AggregateByPeriod buckets a sorted ledger into gap-free periods covering
// [from, to]. A period without entries carries the previous closing balance
// forward, starting from startingBalance.
func AggregateByPeriod(
	ledger []entity.LedgerEntry,
	startingBalance decimal.Decimal,
	from, to time.Time,
	granularity Granularity,
) []PeriodSummary {
	periods := GeneratePeriodSeries(from, to, granularity)
	summaries := make([]PeriodSummary, 0, len(periods))

	balance := startingBalance
	i := 0
	for _, period := range periods {
		summary := PeriodSummary{
			PeriodInfo: period,
			Inflow:     decimal.Zero,
			Outflow:    decimal.Zero,
			Net:        decimal.Zero,
		}

		// Entries before the first period only move the opening balance.
		for i < len(ledger) && ledger[i].Date.Before(period.PeriodStart) {
			balance = ledger[i].RunningBalance
			i++
		}

		for i < len(ledger) && !ledger[i].Date.After(period.PeriodEnd) {
			e := ledger[i]
			if e.Amount.IsNegative() {
				summary.Outflow = summary.Outflow.Add(e.Amount.Abs())
			} else {
				summary.Inflow = summary.Inflow.Add(e.Amount)
			}
			summary.Net = summary.Net.Add(e.Amount)
			summary.EntryCount++
			balance = e.RunningBalance
			i++
		}

		summary.ClosingBalance = balance
		summaries = append(summaries, summary)
	}
	return summaries
}
