package fixedcost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// PreviewOccurrencesInput represents the input for an occurrence preview.
type PreviewOccurrencesInput struct {
	FixedCostID uuid.UUID
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
}

// PreviewOccurrencesOutput lists the occurrences of one fixed cost with its
// overrides applied. Skipped occurrences are absent.
type PreviewOccurrencesOutput struct {
	FixedCost   *entity.FixedCost
	Occurrences []entity.LedgerEntry
}

// PreviewOccurrencesUseCase expands a single fixed cost over a window.
type PreviewOccurrencesUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
	overrideRepo  adapter.OverrideRepository
}

// NewPreviewOccurrencesUseCase creates a new PreviewOccurrencesUseCase instance.
func NewPreviewOccurrencesUseCase(
	fixedCostRepo adapter.FixedCostRepository,
	overrideRepo adapter.OverrideRepository,
) *PreviewOccurrencesUseCase {
	return &PreviewOccurrencesUseCase{
		fixedCostRepo: fixedCostRepo,
		overrideRepo:  overrideRepo,
	}
}

// Execute expands the fixed cost within [StartDate, EndDate].
func (uc *PreviewOccurrencesUseCase) Execute(ctx context.Context, input PreviewOccurrencesInput) (*PreviewOccurrencesOutput, error) {
	start := calendar.Normalize(input.StartDate)
	end := calendar.Normalize(input.EndDate)
	if end.Before(start) {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	fixedCost, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID)
	if err != nil {
		return nil, err
	}

	overrides, err := uc.overrideRepo.FindByFixedCost(ctx, fixedCost.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}

	occurrences, err := projection.ExpandOccurrences(fixedCost, start, end, projection.NewOverrideIndex(overrides))
	if err != nil {
		return nil, domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidRhythm,
			"fixed cost cannot be expanded",
			err,
		)
	}
	if occurrences == nil {
		occurrences = []entity.LedgerEntry{}
	}

	return &PreviewOccurrencesOutput{
		FixedCost:   fixedCost,
		Occurrences: occurrences,
	}, nil
}
