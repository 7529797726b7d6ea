package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/persistence"
	"github.com/liq-planung/backend/internal/integration/persistence/testdb"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

type repos struct {
	transactions adapter.TransactionRepository
	fixedCosts   adapter.FixedCostRepository
}

func newRepos(t *testing.T) repos {
	db := testdb.Open(t)
	return repos{
		transactions: persistence.NewTransactionRepository(db),
		fixedCosts:   persistence.NewFixedCostRepository(db),
	}
}

func transactionCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()
	var txnErr *domainerror.TransactionError
	require.True(t, errors.As(err, &txnErr), "expected TransactionError, got %v", err)
	return txnErr.Code
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := NewCreateTransactionUseCase(r.transactions, r.fixedCosts)
	userID := uuid.New()

	output, err := uc.Execute(ctx, CreateTransactionInput{
		UserID:    userID,
		Date:      time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("4000"),
		Direction: entity.DirectionIncoming,
		Details:   "Rechnung 1042",
	})
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(2025, time.June, 10), output.Transaction.Date)

	stored, err := r.transactions.FindByID(ctx, output.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rechnung 1042", stored.Details)
}

func TestCreateTransaction_Validation(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := NewCreateTransactionUseCase(r.transactions, r.fixedCosts)
	valid := CreateTransactionInput{
		UserID:    uuid.New(),
		Date:      calendar.Date(2025, time.June, 10),
		Amount:    decimal.NewFromInt(100),
		Direction: entity.DirectionOutgoing,
	}

	tests := []struct {
		name   string
		modify func(in *CreateTransactionInput)
		code   domainerror.TransactionErrorCode
	}{
		{"missing date", func(in *CreateTransactionInput) { in.Date = time.Time{} }, domainerror.ErrCodeInvalidTransactionDate},
		{"negative amount", func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-1) }, domainerror.ErrCodeInvalidTransactionAmount},
		{"unknown direction", func(in *CreateTransactionInput) { in.Direction = "Sideways" }, domainerror.ErrCodeInvalidDirection},
		{"details too long", func(in *CreateTransactionInput) { in.Details = string(make([]byte, MaxDetailsLength+1)) }, domainerror.ErrCodeDetailsTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.modify(&input)
			_, err := uc.Execute(ctx, input)
			assert.Equal(t, tt.code, transactionCode(t, err))
		})
	}
}

func TestCreateTransaction_ForeignFixedCost(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := NewCreateTransactionUseCase(r.transactions, r.fixedCosts)

	fc := entity.NewFixedCost(uuid.New(), "Miete", decimal.NewFromInt(2000), entity.RhythmMonthly, calendar.Date(2025, time.January, 1), nil, nil)
	require.NoError(t, r.fixedCosts.Create(ctx, fc))

	_, err := uc.Execute(ctx, CreateTransactionInput{
		UserID:      uuid.New(),
		Date:        calendar.Date(2025, time.June, 1),
		Amount:      decimal.NewFromInt(2000),
		Direction:   entity.DirectionOutgoing,
		FixedCostID: &fc.ID,
	})
	assert.ErrorIs(t, err, domainerror.ErrFixedCostNotFound)
}

func TestSettleAndDeleteTransaction_Ownership(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	owner := uuid.New()
	txn := entity.NewTransaction(owner, calendar.Date(2025, time.June, 10), decimal.NewFromInt(4000), entity.DirectionIncoming, "Rechnung", "", false)
	require.NoError(t, r.transactions.Create(ctx, txn))

	settle := NewSettleTransactionUseCase(r.transactions)
	remove := NewDeleteTransactionUseCase(r.transactions)

	_, err := settle.Execute(ctx, SettleTransactionInput{TransactionID: txn.ID, UserID: uuid.New(), Settled: true})
	assert.Equal(t, domainerror.ErrCodeNotAuthorizedTransaction, transactionCode(t, err))

	output, err := settle.Execute(ctx, SettleTransactionInput{TransactionID: txn.ID, UserID: owner, Settled: true})
	require.NoError(t, err)
	assert.True(t, output.Transaction.Settled)

	_, err = remove.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID, UserID: owner})
	require.NoError(t, err)

	_, err = remove.Execute(ctx, DeleteTransactionInput{TransactionID: txn.ID, UserID: owner})
	assert.Equal(t, domainerror.ErrCodeTransactionNotFound, transactionCode(t, err))
}

func TestListTransactions_Totals(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	userID := uuid.New()
	require.NoError(t, r.transactions.BulkCreate(ctx, []*entity.Transaction{
		entity.NewTransaction(userID, calendar.Date(2025, time.June, 1), decimal.RequireFromString("2000"), entity.DirectionOutgoing, "Miete", "", false),
		entity.NewTransaction(userID, calendar.Date(2025, time.June, 10), decimal.RequireFromString("4000.50"), entity.DirectionIncoming, "Rechnung", "", false),
		entity.NewTransaction(userID, calendar.Date(2025, time.June, 20), decimal.RequireFromString("9000"), entity.DirectionIncoming, "Offerte", "", true),
	}))

	uc := NewListTransactionsUseCase(r.transactions)

	output, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, output.Transactions, 2)
	assert.Equal(t, "4000.5", output.Totals.Inflow.String())
	assert.Equal(t, "2000", output.Totals.Outflow.String())
	assert.Equal(t, "2000.5", output.Totals.Net.String())

	output, err = uc.Execute(ctx, ListTransactionsInput{UserID: userID, IncludeSimulated: true})
	require.NoError(t, err)
	assert.Len(t, output.Transactions, 3)

	start := calendar.Date(2025, time.July, 1)
	end := calendar.Date(2025, time.June, 1)
	_, err = uc.Execute(ctx, ListTransactionsInput{UserID: userID, StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)
}

func TestImportTransactions(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	userID := uuid.New()
	uc := NewImportTransactionsUseCase(r.transactions, fixedClock(calendar.Date(2025, time.June, 15)))

	output, err := uc.Execute(ctx, ImportTransactionsInput{
		UserID: userID,
		Rows: []ImportRow{
			{Date: "31.05.2025", Amount: "1'250.50", Details: "Rechnung 1040"},
			{Date: "2025-06-02", Amount: "-80", Details: "Gebühren"},
			{Date: "32.13.2025", Amount: "10", Details: "kaputt"},
			{Date: "03.06.2025", Amount: "zehn", Details: "kaputt"},
			{Date: "04.06.2025", Amount: "CHF 99.90", Direction: "Ausgabe", Details: "Software"},
			{Date: "05.06.2025", Amount: "10", Direction: "Seitwärts"},
			{Date: "06.06.2025", Amount: "-80", Direction: "Eingang", Details: "Rückerstattung"},
			{Date: "07.06.2025", Amount: "-45", Direction: "Ausgabe", Details: "Porto"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, output.ImportedCount)
	require.Len(t, output.Skipped, 4)
	assert.Equal(t, 3, output.Skipped[0].Row)
	assert.Equal(t, 4, output.Skipped[1].Row)
	assert.Equal(t, 6, output.Skipped[2].Row)
	assert.Equal(t, 7, output.Skipped[3].Row)
	assert.Contains(t, output.Skipped[3].Reason, "negative amount for an incoming row")

	stored, err := r.transactions.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	assert.Equal(t, calendar.Date(2025, time.May, 31), stored[0].Date)
	assert.Equal(t, entity.DirectionIncoming, stored[0].Direction)
	assert.Equal(t, "1250.5", stored[0].Amount.String())
	assert.Equal(t, entity.DirectionOutgoing, stored[1].Direction)
	assert.Equal(t, "80", stored[1].Amount.String())
	assert.Equal(t, entity.DirectionOutgoing, stored[2].Direction)
	assert.Equal(t, entity.DirectionOutgoing, stored[3].Direction)
	assert.Equal(t, "45", stored[3].Amount.String())
}

func TestImportTransactions_Empty(t *testing.T) {
	r := newRepos(t)
	uc := NewImportTransactionsUseCase(r.transactions, fixedClock(time.Now()))

	_, err := uc.Execute(context.Background(), ImportTransactionsInput{UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeEmptyImport, transactionCode(t, err))
}
