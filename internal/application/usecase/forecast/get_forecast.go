package forecast

import (
	"context"
	"encoding/json"
	"errors"
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

const defaultHorizonMonths = 12

// GetForecastInput represents the input for a forecast.
// Nil fields fall back to the configured defaults.
type GetForecastInput struct {
	UserID             uuid.UUID
	StartDate          *time.Time
	EndDate            *time.Time
	IncludeSimulations *bool
	StartingBalance    *decimal.Decimal
	Granularity        projection.Granularity
}

// GetForecastOutput is the projected ledger of the window and its period aggregation.
type GetForecastOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	Granularity    projection.Granularity
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Entries        []entity.LedgerEntry
	Periods        []projection.PeriodSummary
	Issues         []projection.Issue
	Fingerprint    string
	Cached         bool
}

// GetForecastUseCase loads a user's records, projects them and caches the result.
type GetForecastUseCase struct {
	repos    Repositories
	cache    adapter.ProjectionCache
	clock    adapter.Clock
	settings Settings
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(
	repos Repositories,
	cache adapter.ProjectionCache,
	clock adapter.Clock,
	settings Settings,
) *GetForecastUseCase {
	return &GetForecastUseCase{
		repos:    repos,
		cache:    cache,
		clock:    clock,
		settings: settings,
	}
}

// Execute builds the forecast.
//
// Without an explicit starting balance the latest balance snapshot anchors
// the projection. A snapshot is the balance at the start of its day; when it
// predates the window, the entries in between are replayed so the window
// opens with the projected balance.
func (uc *GetForecastUseCase) Execute(ctx context.Context, input GetForecastInput) (*GetForecastOutput, error) {
	today := calendar.Normalize(uc.clock.Now())

	start, end, err := uc.resolveWindow(input, today)
	if err != nil {
		return nil, err
	}

	granularity := input.Granularity
	if granularity == "" {
		granularity = projection.GranularityMonthly
	}
	if !granularity.IsValid() {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: monthly or quarterly",
			domainerror.ErrInvalidGranularity,
		)
	}

	rec, err := uc.repos.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	includeSimulations := uc.settings.IncludeSimulations
	if input.IncludeSimulations != nil {
		includeSimulations = *input.IncludeSimulations
	}

	ledgerInput := rec.projectedInput(input.StartingBalance, start, end, projection.Options{
		IncludeSimulations: includeSimulations,
		Today:              today,
		ShiftPastDue:       uc.settings.ShiftPastDue,
	})

	fingerprint, err := projection.Fingerprint(ledgerInput)
	if err != nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeForecastInternalError,
			"failed to fingerprint forecast input",
			err,
		)
	}

	result, cached := uc.lookup(ctx, input.UserID, fingerprint)
	if !cached {
		computed := projection.BuildLedger(ledgerInput)
		result = &computed
		logIssues(input.UserID, result.Issues)
		uc.store(ctx, input.UserID, fingerprint, result)
	}

	startingBalance := ledgerInput.StartingBalance
	openingBalance, entries := carryInto(result.Entries, startingBalance, start)

	return &GetForecastOutput{
		StartDate:      start,
		EndDate:        end,
		Granularity:    granularity,
		OpeningBalance: openingBalance,
		ClosingBalance: result.ClosingBalance(startingBalance),
		Entries:        entries,
		Periods:        projection.AggregateByPeriod(result.Entries, startingBalance, start, end, granularity),
		Issues:         result.Issues,
		Fingerprint:    fingerprint,
		Cached:         cached,
	}, nil
}

// resolveWindow applies the defaults: the window starts today and runs to the
// end of the month HorizonMonths-1 months later.
func (uc *GetForecastUseCase) resolveWindow(input GetForecastInput, today time.Time) (time.Time, time.Time, error) {
	start := today
	if input.StartDate != nil {
		start = calendar.Normalize(*input.StartDate)
	}

	var end time.Time
	if input.EndDate != nil {
		end = calendar.Normalize(*input.EndDate)
	} else {
		horizon := uc.settings.HorizonMonths
		if horizon <= 0 {
			horizon = defaultHorizonMonths
		}
		end = calendar.EndOfMonth(calendar.AddMonths(start, horizon-1))
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return start, end, nil
}

// lookup returns a cached ledger. Cache failures are logged and treated as misses.
func (uc *GetForecastUseCase) lookup(ctx context.Context, userID uuid.UUID, fingerprint string) (*projection.LedgerResult, bool) {
	payload, err := uc.cache.Get(ctx, userID, fingerprint)
	if err != nil {
		if !errors.Is(err, adapter.ErrCacheMiss) {
			slog.Warn("Failed to read forecast cache", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var result projection.LedgerResult
	if err := json.Unmarshal(payload, &result); err != nil {
		slog.Warn("Discarding unreadable forecast cache entry", "user_id", userID, "error", err)
		return nil, false
	}
	return &result, true
}

func (uc *GetForecastUseCase) store(ctx context.Context, userID uuid.UUID, fingerprint string, result *projection.LedgerResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Failed to encode forecast for cache", "user_id", userID, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, userID, fingerprint, payload); err != nil {
		slog.Warn("Failed to write forecast cache", "user_id", userID, "error", err)
	}
}

