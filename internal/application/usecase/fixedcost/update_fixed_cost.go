package fixedcost

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// UpdateFixedCostInput represents the input for a partial fixed cost update.
// Nil fields are left unchanged. ClearEndDate removes the end date.
type UpdateFixedCostInput struct {
	FixedCostID  uuid.UUID
	UserID       uuid.UUID
	Name         *string
	Amount       *decimal.Decimal
	Rhythm       *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Category     *string
}

// UpdateFixedCostOutput represents the output of a fixed cost update.
type UpdateFixedCostOutput struct {
	FixedCost *entity.FixedCost
}

// UpdateFixedCostUseCase handles fixed cost updates.
//
// Overrides stay keyed by their original dates. After a rhythm or start date
// change an override whose date the new schedule no longer produces is
// simply never applied.
type UpdateFixedCostUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
}

// NewUpdateFixedCostUseCase creates a new UpdateFixedCostUseCase instance.
func NewUpdateFixedCostUseCase(fixedCostRepo adapter.FixedCostRepository) *UpdateFixedCostUseCase {
	return &UpdateFixedCostUseCase{
		fixedCostRepo: fixedCostRepo,
	}
}

// Execute performs the fixed cost update.
func (uc *UpdateFixedCostUseCase) Execute(ctx context.Context, input UpdateFixedCostInput) (*UpdateFixedCostOutput, error) {
	fixedCost, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		fixedCost.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		fixedCost.Amount = *input.Amount
	}
	if input.Rhythm != nil {
		rhythm, err := parseRhythm(*input.Rhythm)
		if err != nil {
			return nil, err
		}
		fixedCost.Rhythm = rhythm
	}
	if input.StartDate != nil {
		fixedCost.StartDate = calendar.Normalize(*input.StartDate)
	}
	if input.ClearEndDate {
		fixedCost.EndDate = nil
	} else if input.EndDate != nil {
		fixedCost.EndDate = normalizePtr(input.EndDate)
	}
	if input.Category != nil {
		fixedCost.Category = input.Category
	}

	if err := validateFixedCost(fixedCost); err != nil {
		return nil, err
	}

	fixedCost.UpdatedAt = time.Now().UTC()
	if err := uc.fixedCostRepo.Update(ctx, fixedCost); err != nil {
		return nil, fmt.Errorf("failed to update fixed cost: %w", err)
	}

	return &UpdateFixedCostOutput{
		FixedCost: fixedCost,
	}, nil
}
