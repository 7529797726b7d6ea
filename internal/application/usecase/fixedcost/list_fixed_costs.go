package fixedcost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// ListFixedCostsInput represents the input for listing fixed costs.
type ListFixedCostsInput struct {
	UserID uuid.UUID
}

// ListFixedCostsOutput represents the output of listing fixed costs.
type ListFixedCostsOutput struct {
	FixedCosts []*entity.FixedCost
}

// ListFixedCostsUseCase handles listing fixed costs.
type ListFixedCostsUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
}

// NewListFixedCostsUseCase creates a new ListFixedCostsUseCase instance.
func NewListFixedCostsUseCase(fixedCostRepo adapter.FixedCostRepository) *ListFixedCostsUseCase {
	return &ListFixedCostsUseCase{
		fixedCostRepo: fixedCostRepo,
	}
}

// Execute returns the user's fixed costs ordered by start date.
func (uc *ListFixedCostsUseCase) Execute(ctx context.Context, input ListFixedCostsInput) (*ListFixedCostsOutput, error) {
	fixedCosts, err := uc.fixedCostRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}

	return &ListFixedCostsOutput{
		FixedCosts: fixedCosts,
	}, nil
}
