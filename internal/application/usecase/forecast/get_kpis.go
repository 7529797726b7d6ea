package forecast

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// NetDays is the look-ahead of the net cashflow KPI.
const NetDays = 30

// GetKPIsInput represents the input for the dashboard KPIs.
type GetKPIsInput struct {
	UserID             uuid.UUID
	AsOf               *time.Time
	IncludeSimulations *bool
}

// GetKPIsOutput holds the dashboard KPIs as of one day.
type GetKPIsOutput struct {
	AsOf                time.Time
	CurrentBalance      decimal.Decimal
	Net30               decimal.Decimal // Projected net of the NetDays days after AsOf
	Runway              projection.Runway
	EndOfMonthForecast  decimal.Decimal
	OpenIncoming        projection.OpenSummary
	OpenOutgoing        projection.OpenSummary
	Issues              []projection.Issue
	BalanceRecordedDate *time.Time
}

// GetKPIsUseCase computes the dashboard KPIs.
type GetKPIsUseCase struct {
	repos    Repositories
	clock    adapter.Clock
	settings Settings
}

// NewGetKPIsUseCase creates a new GetKPIsUseCase instance.
func NewGetKPIsUseCase(repos Repositories, clock adapter.Clock, settings Settings) *GetKPIsUseCase {
	return &GetKPIsUseCase{
		repos:    repos,
		clock:    clock,
		settings: settings,
	}
}

// Execute computes the KPIs.
//
// The current balance is the latest snapshot rolled forward through AsOf,
// the same way a forecast opens. Runway uses the outflows of the three full
// months before AsOf's month; the forward KPIs project from the day after
// AsOf, starting at the current balance.
func (uc *GetKPIsUseCase) Execute(ctx context.Context, input GetKPIsInput) (*GetKPIsOutput, error) {
	today := calendar.Normalize(uc.clock.Now())
	asOf := today
	if input.AsOf != nil {
		asOf = calendar.Normalize(*input.AsOf)
	}

	rec, err := uc.repos.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	includeSimulations := uc.settings.IncludeSimulations
	if input.IncludeSimulations != nil {
		includeSimulations = *input.IncludeSimulations
	}
	opts := projection.Options{
		IncludeSimulations: includeSimulations,
		Today:              today,
		ShiftPastDue:       uc.settings.ShiftPastDue,
	}

	monthStart := calendar.StartOfMonth(asOf)
	trailing := projection.BuildLedger(rec.ledgerInput(
		decimal.Zero,
		calendar.AddMonths(monthStart, -projection.RunwayTrailingMonths),
		monthStart.AddDate(0, 0, -1),
		opts,
	))

	forwardStart := asOf.AddDate(0, 0, 1)
	forwardEnd := asOf.AddDate(0, 0, NetDays)
	if eom := calendar.EndOfMonth(asOf); eom.After(forwardEnd) {
		forwardEnd = eom
	}
	forwardInput := rec.projectedInput(nil, forwardStart, forwardEnd, opts)
	forward := projection.BuildLedger(forwardInput)
	currentBalance, upcoming := carryInto(forward.Entries, forwardInput.StartingBalance, forwardStart)

	issues := mergeIssues(trailing.Issues, forward.Issues)
	logIssues(input.UserID, issues)

	output := &GetKPIsOutput{
		AsOf:               asOf,
		CurrentBalance:     currentBalance,
		Net30:              projection.Net(upcoming, forwardStart, asOf.AddDate(0, 0, NetDays)),
		Runway:             projection.RunwayMonths(currentBalance, trailing.Entries, asOf),
		EndOfMonthForecast: projection.EndOfMonthForecast(upcoming, asOf, currentBalance),
		OpenIncoming:       projection.OpenAmounts(rec.transactions, entity.DirectionIncoming),
		OpenOutgoing:       projection.OpenAmounts(rec.transactions, entity.DirectionOutgoing),
		Issues:             issues,
	}
	if rec.balance != nil {
		recorded := rec.balance.Date
		output.BalanceRecordedDate = &recorded
	}

	return output, nil
}

// mergeIssues concatenates issue lists, dropping repeats of the same record.
func mergeIssues(lists ...[]projection.Issue) []projection.Issue {
	seen := make(map[projection.Issue]bool)
	merged := []projection.Issue{}
	for _, list := range lists {
		for _, issue := range list {
			if seen[issue] {
				continue
			}
			seen[issue] = true
			merged = append(merged, issue)
		}
	}
	return merged
}
