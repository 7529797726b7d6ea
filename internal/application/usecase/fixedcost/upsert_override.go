package fixedcost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/projection"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// UpsertOverrideInput represents the input for creating or replacing the
// override of one occurrence.
type UpsertOverrideInput struct {
	FixedCostID  uuid.UUID
	UserID       uuid.UUID
	OriginalDate time.Time
	NewDate      *time.Time
	NewAmount    *decimal.Decimal
	Skipped      bool
	Notes        *string
}

// UpsertOverrideOutput represents the output of an override upsert.
type UpsertOverrideOutput struct {
	Override *entity.Override
}

// UpsertOverrideUseCase stores the override for (FixedCostID, OriginalDate).
// An existing override for the same occurrence is replaced.
type UpsertOverrideUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
	overrideRepo  adapter.OverrideRepository
}

// NewUpsertOverrideUseCase creates a new UpsertOverrideUseCase instance.
func NewUpsertOverrideUseCase(
	fixedCostRepo adapter.FixedCostRepository,
	overrideRepo adapter.OverrideRepository,
) *UpsertOverrideUseCase {
	return &UpsertOverrideUseCase{
		fixedCostRepo: fixedCostRepo,
		overrideRepo:  overrideRepo,
	}
}

// Execute performs the override upsert.
func (uc *UpsertOverrideUseCase) Execute(ctx context.Context, input UpsertOverrideInput) (*UpsertOverrideOutput, error) {
	if input.OriginalDate.IsZero() {
		return nil, domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidFixedCostDate,
			"original_date is required",
			domainerror.ErrNoSuchOccurrence,
		)
	}

	if input.NewAmount != nil {
		if err := validateAmount(*input.NewAmount); err != nil {
			return nil, err
		}
	}

	fixedCost, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Overrides modify occurrences; they never create one
	originalDate := calendar.Normalize(input.OriginalDate)
	scheduled, err := projection.HasOccurrence(fixedCost, originalDate)
	if err != nil {
		return nil, fmt.Errorf("failed to expand fixed cost: %w", err)
	}
	if !scheduled {
		return nil, domainerror.NewFixedCostError(
			domainerror.ErrCodeNoSuchOccurrence,
			fmt.Sprintf("fixed cost has no occurrence on %s", calendar.FormatISO(originalDate)),
			domainerror.ErrNoSuchOccurrence,
		)
	}

	override := entity.NewOverride(
		fixedCost.ID,
		originalDate,
		normalizePtr(input.NewDate),
		input.NewAmount,
		input.Skipped,
		input.Notes,
	)

	if err := uc.overrideRepo.Upsert(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}

	// A replaced override keeps the ID it was first stored with
	stored, err := uc.overrideRepo.FindByKey(ctx, fixedCost.ID, originalDate)
	if err != nil {
		return nil, fmt.Errorf("failed to reload override: %w", err)
	}

	return &UpsertOverrideOutput{
		Override: stored,
	}, nil
}
