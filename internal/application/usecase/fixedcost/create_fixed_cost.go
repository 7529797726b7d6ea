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

// CreateFixedCostInput represents the input for fixed cost creation.
type CreateFixedCostInput struct {
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Rhythm    string
	StartDate time.Time
	EndDate   *time.Time
	Category  *string
}

// CreateFixedCostOutput represents the output of fixed cost creation.
type CreateFixedCostOutput struct {
	FixedCost *entity.FixedCost
}

// CreateFixedCostUseCase handles fixed cost creation logic.
type CreateFixedCostUseCase struct {
	fixedCostRepo adapter.FixedCostRepository
}

// NewCreateFixedCostUseCase creates a new CreateFixedCostUseCase instance.
func NewCreateFixedCostUseCase(fixedCostRepo adapter.FixedCostRepository) *CreateFixedCostUseCase {
	return &CreateFixedCostUseCase{
		fixedCostRepo: fixedCostRepo,
	}
}

// Execute performs the fixed cost creation.
func (uc *CreateFixedCostUseCase) Execute(ctx context.Context, input CreateFixedCostInput) (*CreateFixedCostOutput, error) {
	rhythm, err := parseRhythm(input.Rhythm)
	if err != nil {
		return nil, err
	}

	fixedCost := entity.NewFixedCost(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Amount,
		rhythm,
		calendar.Normalize(input.StartDate),
		normalizePtr(input.EndDate),
		input.Category,
	)
	if err := validateFixedCost(fixedCost); err != nil {
		return nil, err
	}

	if err := uc.fixedCostRepo.Create(ctx, fixedCost); err != nil {
		return nil, fmt.Errorf("failed to create fixed cost: %w", err)
	}

	return &CreateFixedCostOutput{
		FixedCost: fixedCost,
	}, nil
}
