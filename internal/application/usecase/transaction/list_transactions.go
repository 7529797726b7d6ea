package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID           uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
	Direction        *entity.Direction
	OpenOnly         bool
	Search           string
	IncludeSimulated bool
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	Net     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Direction != nil && !input.Direction.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDirection,
			"direction must be 'Incoming' or 'Outgoing'",
			domainerror.ErrInvalidDirection,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:           input.UserID,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Direction:        input.Direction,
		OpenOnly:         input.OpenOnly,
		Search:           input.Search,
		IncludeSimulated: input.IncludeSimulated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := TotalsOutput{
		Inflow:  decimal.Zero,
		Outflow: decimal.Zero,
		Net:     decimal.Zero,
	}
	for _, txn := range transactions {
		signed := txn.SignedAmount()
		if signed.IsNegative() {
			totals.Outflow = totals.Outflow.Add(signed.Abs())
		} else {
			totals.Inflow = totals.Inflow.Add(signed)
		}
		totals.Net = totals.Net.Add(signed)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}
