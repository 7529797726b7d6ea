package categoryrule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// ListCategoryRulesInput represents the input for listing category rules.
type ListCategoryRulesInput struct {
	UserID uuid.UUID
}

// ListCategoryRulesOutput represents the output of listing category rules.
type ListCategoryRulesOutput struct {
	Rules []*entity.CategoryRule
}

// ListCategoryRulesUseCase handles listing category rules logic.
type ListCategoryRulesUseCase struct {
	ruleRepo adapter.CategoryRuleRepository
}

// NewListCategoryRulesUseCase creates a new ListCategoryRulesUseCase instance.
func NewListCategoryRulesUseCase(ruleRepo adapter.CategoryRuleRepository) *ListCategoryRulesUseCase {
	return &ListCategoryRulesUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute returns the user's rules in evaluation order.
func (uc *ListCategoryRulesUseCase) Execute(ctx context.Context, input ListCategoryRulesInput) (*ListCategoryRulesOutput, error) {
	rules, err := uc.ruleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category rules: %w", err)
	}

	return &ListCategoryRulesOutput{
		Rules: rules,
	}, nil
}
