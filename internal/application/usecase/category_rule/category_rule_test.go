package categoryrule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence"
	"github.com/liq-planung/backend/internal/integration/persistence/testdb"
)

func ruleCode(t *testing.T, err error) domainerror.CategoryRuleErrorCode {
	t.Helper()
	var ruleErr *domainerror.CategoryRuleError
	require.True(t, errors.As(err, &ruleErr), "expected CategoryRuleError, got %v", err)
	return ruleErr.Code
}

func TestCreateCategoryRule_AutoPriority(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewCategoryRuleRepository(testdb.Open(t))
	uc := NewCreateCategoryRuleUseCase(repo)
	userID := uuid.New()

	first, err := uc.Execute(ctx, CreateCategoryRuleInput{UserID: userID, Pattern: "*miete*", Category: "Raumkosten"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Rule.Priority)

	explicit := 10
	_, err = uc.Execute(ctx, CreateCategoryRuleInput{UserID: userID, Pattern: "*swisscom*", Category: "Telefon", Priority: &explicit})
	require.NoError(t, err)

	third, err := uc.Execute(ctx, CreateCategoryRuleInput{UserID: userID, Pattern: "*ahv*", Category: "Sozialversicherungen"})
	require.NoError(t, err)
	assert.Equal(t, 11, third.Rule.Priority)

	list, err := NewListCategoryRulesUseCase(repo).Execute(ctx, ListCategoryRulesInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, list.Rules, 3)
	assert.Equal(t, "*ahv*", list.Rules[0].Pattern)
	assert.Equal(t, "*miete*", list.Rules[2].Pattern)
}

func TestCreateCategoryRule_Validation(t *testing.T) {
	uc := NewCreateCategoryRuleUseCase(persistence.NewCategoryRuleRepository(testdb.Open(t)))

	tests := []struct {
		name  string
		input CreateCategoryRuleInput
		code  domainerror.CategoryRuleErrorCode
	}{
		{"missing pattern", CreateCategoryRuleInput{Category: "X"}, domainerror.ErrCodeMissingRuleFields},
		{"missing category", CreateCategoryRuleInput{Pattern: "*x*"}, domainerror.ErrCodeMissingRuleFields},
		{"control character", CreateCategoryRuleInput{Pattern: "*x\n*", Category: "X"}, domainerror.ErrCodeInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.Equal(t, tt.code, ruleCode(t, err))
		})
	}
}

func TestDeleteCategoryRule(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewCategoryRuleRepository(testdb.Open(t))
	userID := uuid.New()
	rule := entity.NewCategoryRule(userID, "*miete*", "Raumkosten", 1)
	require.NoError(t, repo.Create(ctx, rule))

	uc := NewDeleteCategoryRuleUseCase(repo)
	assert.Equal(t, domainerror.ErrCodeCategoryRuleNotFound, ruleCode(t, uc.Execute(ctx, DeleteCategoryRuleInput{RuleID: rule.ID, UserID: uuid.New()})))
	require.NoError(t, uc.Execute(ctx, DeleteCategoryRuleInput{RuleID: rule.ID, UserID: userID}))
	assert.Equal(t, domainerror.ErrCodeCategoryRuleNotFound, ruleCode(t, uc.Execute(ctx, DeleteCategoryRuleInput{RuleID: rule.ID, UserID: userID})))
}

func TestTestPattern(t *testing.T) {
	ctx := context.Background()
	transactions := persistence.NewTransactionRepository(testdb.Open(t))
	userID := uuid.New()
	for i, details := range []string{"Miete Juni", "MIETE Juli", "Swisscom", "Nebenkosten Miete"} {
		txn := entity.NewTransaction(userID, calendar.Date(2025, time.June, i+1), decimal.NewFromInt(100), entity.DirectionOutgoing, details, "", false)
		require.NoError(t, transactions.Create(ctx, txn))
	}

	uc := NewTestPatternUseCase(transactions)

	output, err := uc.Execute(ctx, TestPatternInput{UserID: userID, Pattern: "miete*"})
	require.NoError(t, err)
	assert.Equal(t, 2, output.MatchCount)

	output, err = uc.Execute(ctx, TestPatternInput{UserID: userID, Pattern: "*miete*", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, output.MatchCount)
	require.Len(t, output.MatchingTransactions, 1)
	assert.Equal(t, "Miete Juni", output.MatchingTransactions[0].Details)
}
