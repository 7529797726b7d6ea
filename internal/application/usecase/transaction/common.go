// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// MaxDetailsLength is the maximum allowed length for transaction details.
const MaxDetailsLength = 500

// findOwnedTransaction loads a transaction and verifies that it belongs to userID.
func findOwnedTransaction(
	ctx context.Context,
	repo adapter.TransactionRepository,
	transactionID, userID uuid.UUID,
	action string,
) (*entity.Transaction, error) {
	transaction, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			fmt.Sprintf("not authorized to %s this transaction", action),
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return transaction, nil
}

// validateTransaction checks the fields shared by manual entry and import.
func validateTransaction(amount decimal.Decimal, direction entity.Direction, details string) error {
	if !direction.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDirection,
			"direction must be 'Incoming' or 'Outgoing'",
			domainerror.ErrInvalidDirection,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if len(details) > MaxDetailsLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDetailsTooLong,
			fmt.Sprintf("details must not exceed %d characters", MaxDetailsLength),
			domainerror.ErrDetailsTooLong,
		)
	}

	return nil
}
