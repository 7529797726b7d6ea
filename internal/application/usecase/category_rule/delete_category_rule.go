package categoryrule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// DeleteCategoryRuleInput represents the input for category rule deletion.
type DeleteCategoryRuleInput struct {
	RuleID uuid.UUID
	UserID uuid.UUID
}

// DeleteCategoryRuleUseCase handles category rule deletion logic.
type DeleteCategoryRuleUseCase struct {
	ruleRepo adapter.CategoryRuleRepository
}

// NewDeleteCategoryRuleUseCase creates a new DeleteCategoryRuleUseCase instance.
func NewDeleteCategoryRuleUseCase(ruleRepo adapter.CategoryRuleRepository) *DeleteCategoryRuleUseCase {
	return &DeleteCategoryRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the category rule deletion.
func (uc *DeleteCategoryRuleUseCase) Execute(ctx context.Context, input DeleteCategoryRuleInput) error {
	rule, err := uc.ruleRepo.FindByID(ctx, input.RuleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryRuleNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to find category rule: %w", err)
	}

	// Rules of other users are reported as missing
	if rule.UserID != input.UserID {
		return notFound()
	}

	if err := uc.ruleRepo.Delete(ctx, input.RuleID); err != nil {
		return fmt.Errorf("failed to delete category rule: %w", err)
	}

	return nil
}

func notFound() error {
	return domainerror.NewCategoryRuleError(
		domainerror.ErrCodeCategoryRuleNotFound,
		"category rule not found",
		domainerror.ErrCategoryRuleNotFound,
	)
}
