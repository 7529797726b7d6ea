package fixedcost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// DeleteOverrideInput represents the input for override deletion.
type DeleteOverrideInput struct {
	FixedCostID  uuid.UUID
	UserID       uuid.UUID
	OriginalDate time.Time
}

// DeleteOverrideOutput represents the output of override deletion.
type DeleteOverrideOutput struct {
	Success bool
}

// DeleteOverrideUseCase restores an occurrence to its scheduled values.
type DeleteOverrideUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
	overrideRepo  adapter.OverrideRepository
}

// NewDeleteOverrideUseCase creates a new DeleteOverrideUseCase instance.
func NewDeleteOverrideUseCase(
	fixedCostRepo adapter.FixedCostRepository,
	overrideRepo adapter.OverrideRepository,
) *DeleteOverrideUseCase {
	return &DeleteOverrideUseCase{
		fixedCostRepo: fixedCostRepo,
		overrideRepo:  overrideRepo,
	}
}

// Execute performs the override deletion.
func (uc *DeleteOverrideUseCase) Execute(ctx context.Context, input DeleteOverrideInput) (*DeleteOverrideOutput, error) {
	if _, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.overrideRepo.DeleteByKey(ctx, input.FixedCostID, calendar.Normalize(input.OriginalDate)); err != nil {
		if errors.Is(err, domainerror.ErrOverrideNotFound) {
			return nil, domainerror.NewFixedCostError(
				domainerror.ErrCodeOverrideNotFound,
				"override not found",
				domainerror.ErrOverrideNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete override: %w", err)
	}

	return &DeleteOverrideOutput{
		Success: true,
	}, nil
}
