package fixedcost

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
)

// DeleteFixedCostInput represents the input for fixed cost deletion.
type DeleteFixedCostInput struct {
	FixedCostID uuid.UUID
	UserID      uuid.UUID
}

// DeleteFixedCostOutput represents the output of fixed cost deletion.
type DeleteFixedCostOutput struct {
	Success bool
}

// DeleteFixedCostUseCase deletes a fixed cost together with its overrides.
type DeleteFixedCostUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
}

// NewDeleteFixedCostUseCase creates a new DeleteFixedCostUseCase instance.
func NewDeleteFixedCostUseCase(fixedCostRepo adapter.FixedCostRepository) *DeleteFixedCostUseCase {
	return &DeleteFixedCostUseCase{
		fixedCostRepo: fixedCostRepo,
	}
}

// Execute performs the fixed cost deletion.
func (uc *DeleteFixedCostUseCase) Execute(ctx context.Context, input DeleteFixedCostInput) (*DeleteFixedCostOutput, error) {
	if _, err := findOwnedFixedCost(ctx, uc.fixedCostRepo, input.FixedCostID, input.UserID); err != nil {
		return nil, err
	}

	if err := uc.fixedCostRepo.Delete(ctx, input.FixedCostID); err != nil {
		return nil, fmt.Errorf("failed to delete fixed cost: %w", err)
	}

	return &DeleteFixedCostOutput{
		Success: true,
	}, nil
}
