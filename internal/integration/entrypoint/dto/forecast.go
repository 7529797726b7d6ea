package dto

import (
	"github.com/liq-planung/backend/internal/application/usecase/forecast"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// LedgerEntryResponse is one line of the projected ledger.
type LedgerEntryResponse struct {
	Date           string  `json:"date"`
	OriginalDate   *string `json:"original_date,omitempty"`
	Amount         float64 `json:"amount"`
	Details        string  `json:"details"`
	Category       string  `json:"category"`
	RunningBalance float64 `json:"running_balance"`
	SourceKind     string  `json:"source_kind"`
	SourceID       string  `json:"source_id"`
}

// PeriodResponse aggregates the ledger of one month or quarter.
type PeriodResponse struct {
	Label          string  `json:"label"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Inflow         float64 `json:"inflow"`
	Outflow        float64 `json:"outflow"`
	Net            float64 `json:"net"`
	ClosingBalance float64 `json:"closing_balance"`
	EntryCount     int     `json:"entry_count"`
}

// IssueResponse reports a record that was left out of a projection.
type IssueResponse struct {
	SourceKind string `json:"source_kind"`
	SourceID   string `json:"source_id"`
	Reason     string `json:"reason"`
}

// ForecastResponse represents the projected ledger of a window.
type ForecastResponse struct {
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	Granularity    string                `json:"granularity"`
	OpeningBalance float64               `json:"opening_balance"`
	ClosingBalance float64               `json:"closing_balance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	Periods        []PeriodResponse      `json:"periods"`
	Issues         []IssueResponse       `json:"issues"`
	Cached         bool                  `json:"cached"`
}

// RunwayResponse is the runway KPI. Months is null when Infinite is set.
type RunwayResponse struct {
	Months   *float64 `json:"months"`
	Infinite bool     `json:"infinite"`
	Burn     float64  `json:"burn"`
}

// OpenSummaryResponse counts and sums unsettled transactions.
type OpenSummaryResponse struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// KPIResponse represents the dashboard KPIs.
type KPIResponse struct {
	AsOf                string              `json:"as_of"`
	CurrentBalance      float64             `json:"current_balance"`
	BalanceRecordedDate *string             `json:"balance_recorded_date"`
	Net30               float64             `json:"net_30"`
	Runway              RunwayResponse      `json:"runway"`
	EndOfMonthForecast  float64             `json:"end_of_month_forecast"`
	OpenIncoming        OpenSummaryResponse `json:"open_incoming"`
	OpenOutgoing        OpenSummaryResponse `json:"open_outgoing"`
	Issues              []IssueResponse     `json:"issues"`
}

// ToLedgerEntryResponse converts a ledger entry.
func ToLedgerEntryResponse(e entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		Date:           Date(e.Date),
		OriginalDate:   DatePtr(e.OriginalDate),
		Amount:         Money(e.Amount),
		Details:        e.Details,
		Category:       e.Category,
		RunningBalance: Money(e.RunningBalance),
		SourceKind:     string(e.SourceKind),
		SourceID:       e.SourceID.String(),
	}
}

func toIssueResponses(issues []projection.Issue) []IssueResponse {
	items := make([]IssueResponse, 0, len(issues))
	for _, issue := range issues {
		items = append(items, IssueResponse{
			SourceKind: string(issue.SourceKind),
			SourceID:   issue.SourceID.String(),
			Reason:     issue.Reason,
		})
	}
	return items
}

// ToForecastResponse converts a GetForecastOutput to a ForecastResponse DTO.
func ToForecastResponse(output *forecast.GetForecastOutput) ForecastResponse {
	entries := make([]LedgerEntryResponse, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, ToLedgerEntryResponse(e))
	}

	periods := make([]PeriodResponse, 0, len(output.Periods))
	for _, p := range output.Periods {
		periods = append(periods, PeriodResponse{
			Label:          p.PeriodLabel,
			StartDate:      Date(p.PeriodStart),
			EndDate:        Date(p.PeriodEnd),
			Inflow:         Money(p.Inflow),
			Outflow:        Money(p.Outflow),
			Net:            Money(p.Net),
			ClosingBalance: Money(p.ClosingBalance),
			EntryCount:     p.EntryCount,
		})
	}

	return ForecastResponse{
		StartDate:      Date(output.StartDate),
		EndDate:        Date(output.EndDate),
		Granularity:    string(output.Granularity),
		OpeningBalance: Money(output.OpeningBalance),
		ClosingBalance: Money(output.ClosingBalance),
		Entries:        entries,
		Periods:        periods,
		Issues:         toIssueResponses(output.Issues),
		Cached:         output.Cached,
	}
}

// ToKPIResponse converts a GetKPIsOutput to a KPIResponse DTO.
func ToKPIResponse(output *forecast.GetKPIsOutput) KPIResponse {
	runway := RunwayResponse{
		Infinite: output.Runway.Infinite,
		Burn:     Money(output.Runway.Burn),
	}
	if !output.Runway.Infinite {
		months := Money(output.Runway.Months)
		runway.Months = &months
	}

	return KPIResponse{
		AsOf:                Date(output.AsOf),
		CurrentBalance:      Money(output.CurrentBalance),
		BalanceRecordedDate: DatePtr(output.BalanceRecordedDate),
		Net30:               Money(output.Net30),
		Runway:              runway,
		EndOfMonthForecast:  Money(output.EndOfMonthForecast),
		OpenIncoming:        OpenSummaryResponse{Count: output.OpenIncoming.Count, Sum: Money(output.OpenIncoming.Sum)},
		OpenOutgoing:        OpenSummaryResponse{Count: output.OpenOutgoing.Count, Sum: Money(output.OpenOutgoing.Sum)},
		Issues:              toIssueResponses(output.Issues),
	}
}
