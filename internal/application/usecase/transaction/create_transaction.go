package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID       uuid.UUID
	Date         time.Time
	Amount       decimal.Decimal
	Direction    entity.Direction
	Details      string
	Category     string
	IsSimulation bool
	Settled      bool
	FixedCostID  *uuid.UUID // Set when booking a fixed cost occurrence
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	fixedCostRepo   adapter.FixedCostRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	fixedCostRepo adapter.FixedCostRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		fixedCostRepo:   fixedCostRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if err := validateTransaction(input.Amount, input.Direction, input.Details); err != nil {
		return nil, err
	}

	// A booked occurrence must reference one of the user's fixed costs
	if input.FixedCostID != nil {
		fixedCost, err := uc.fixedCostRepo.FindByID(ctx, *input.FixedCostID)
		if err != nil || fixedCost.UserID != input.UserID {
			return nil, domainerror.NewFixedCostError(
				domainerror.ErrCodeFixedCostNotFound,
				"fixed cost not found",
				domainerror.ErrFixedCostNotFound,
			)
		}
	}

	transaction := entity.NewTransaction(
		input.UserID,
		calendar.Normalize(input.Date),
		input.Amount,
		input.Direction,
		input.Details,
		input.Category,
		input.IsSimulation,
	)
	transaction.Settled = input.Settled
	transaction.FixedCostID = input.FixedCostID

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
