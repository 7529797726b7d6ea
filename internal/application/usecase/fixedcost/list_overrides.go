package fixedcost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// ListOverridesInput represents the input for listing a fixed cost's overrides.
type ListOverridesInput struct {
	FixedCostID uuid.UUID
	UserID      uuid.UUID
}

// ListOverridesOutput represents the output of listing overrides.
type ListOverridesOutput struct {
	Overrides []*entity.Override
}

// ListOverridesUseCase lists the overrides of one fixed cost.
type ListOverridesUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
	overrideRepo  adapter.OverrideRepository
}

// NewListOverridesUseCase creates a new ListOverridesUseCase instance.
func NewListOverridesUseCase(
	fixedCostRepo adapter.FixedCostRepository,
	overrideRepo adapter.OverrideRepository,
) *ListOverridesUseCase {
	return &ListOverridesUseCase{
		fixedCostRepo: fixedCostRepo,
		overrideRepo:  overrideRepo,
	}
}

// Execute returns the overrides ordered by original date.
func (uc *ListOverridesUseCase) Execute(ctx context.Context, input ListOverridesInput) (*ListOverridesOutput, error) {
	if _, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID); err != nil {
		return nil, err
	}

	overrides, err := uc.overrideRepo.FindByFixedCost(ctx, input.FixedCostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	return &ListOverridesOutput{
		Overrides: overrides,
	}, nil
}
