package categoryrule

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// CreateCategoryRuleInput represents the input for category rule creation.
type CreateCategoryRuleInput struct {
	UserID   uuid.UUID
	Pattern  string
	Category string
	Priority *int // Optional, defaults to max priority + 1
}

// CreateCategoryRuleOutput represents the output of category rule creation.
type CreateCategoryRuleOutput struct {
	Rule *entity.CategoryRule
}

// CreateCategoryRuleUseCase handles category rule creation logic.
type CreateCategoryRuleUseCase struct {
	ruleRepo adapter.CategoryRuleRepository
}

// NewCreateCategoryRuleUseCase creates a new CreateCategoryRuleUseCase instance.
func NewCreateCategoryRuleUseCase(ruleRepo adapter.CategoryRuleRepository) *CreateCategoryRuleUseCase {
	return &CreateCategoryRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the category rule creation.
func (uc *CreateCategoryRuleUseCase) Execute(ctx context.Context, input CreateCategoryRuleInput) (*CreateCategoryRuleOutput, error) {
	if err := validatePattern(input.Pattern); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewCategoryRuleError(
			domainerror.ErrCodeMissingRuleFields,
			"category is required",
			domainerror.ErrCategoryRuleMissingFields,
		)
	}

	// Determine priority
	var priority int
	if input.Priority != nil {
		priority = *input.Priority
	} else {
		maxPriority, err := uc.ruleRepo.GetMaxPriorityByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get max priority: %w", err)
		}
		priority = maxPriority + 1
	}

	rule := entity.NewCategoryRule(input.UserID, input.Pattern, category, priority)

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create category rule: %w", err)
	}

	return &CreateCategoryRuleOutput{
		Rule: rule,
	}, nil
}
