package categoryrule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

const (
	// DefaultMatchLimit is the default number of matching transactions to return.
	DefaultMatchLimit = 10
	// MaxMatchLimit is the maximum number of matching transactions to return.
	MaxMatchLimit = 100
)

// TestPatternInput represents the input for pattern testing.
type TestPatternInput struct {
	UserID  uuid.UUID
	Pattern string
	Limit   int // Optional, defaults to DefaultMatchLimit
}

// TestPatternOutput represents the output of pattern testing.
type TestPatternOutput struct {
	MatchingTransactions []*entity.Transaction
	MatchCount           int
}

// TestPatternUseCase previews which transactions a pattern would match.
type TestPatternUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewTestPatternUseCase creates a new TestPatternUseCase instance.
func NewTestPatternUseCase(transactionRepo adapter.TransactionRepository) *TestPatternUseCase {
	return &TestPatternUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the pattern testing.
func (uc *TestPatternUseCase) Execute(ctx context.Context, input TestPatternInput) (*TestPatternOutput, error) {
	if err := validatePattern(input.Pattern); err != nil {
		return nil, err
	}

	// Set default limit if not provided
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultMatchLimit
	} else if limit > MaxMatchLimit {
		limit = MaxMatchLimit
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	rule := &entity.CategoryRule{Pattern: input.Pattern}
	output := &TestPatternOutput{
		MatchingTransactions: []*entity.Transaction{},
	}
	for _, txn := range transactions {
		if !rule.Matches(txn.Details) {
			continue
		}
		output.MatchCount++
		if len(output.MatchingTransactions) < limit {
			output.MatchingTransactions = append(output.MatchingTransactions, txn)
		}
	}

	return output, nil
}
