package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// SettleTransactionInput marks an invoice as paid, or reopens it.
type SettleTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Settled       bool
}

// SettleTransactionOutput represents the output of settling a transaction.
type SettleTransactionOutput struct {
	Transaction *entity.Transaction
}

// SettleTransactionUseCase handles the settled flag of a transaction.
type SettleTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSettleTransactionUseCase creates a new SettleTransactionUseCase instance.
func NewSettleTransactionUseCase(transactionRepo adapter.TransactionRepository) *SettleTransactionUseCase {
	return &SettleTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute updates the settled flag.
func (uc *SettleTransactionUseCase) Execute(ctx context.Context, input SettleTransactionInput) (*SettleTransactionOutput, error) {
	transaction, err := findOwnedTransaction(ctx, uc.transactionRepo, input.TransactionID, input.UserID, "settle")
	if err != nil {
		return nil, err
	}

	transaction.Settled = input.Settled
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &SettleTransactionOutput{
		Transaction: transaction,
	}, nil
}
