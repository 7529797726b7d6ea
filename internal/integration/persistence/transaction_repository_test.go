package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

func seedTransactions(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID) []*entity.Transaction {
	t.Helper()

	invoice := entity.NewTransaction(userID, day(2025, time.June, 10), money("4000"), entity.DirectionIncoming, "Rechnung 1042 Müller AG", "Umsatz", false)
	paid := entity.NewTransaction(userID, day(2025, time.May, 20), money("1500"), entity.DirectionIncoming, "Rechnung 1041", "Umsatz", false)
	paid.Settled = true
	rent := entity.NewTransaction(userID, day(2025, time.June, 1), money("2000"), entity.DirectionOutgoing, "Miete Juni", "Raumkosten", false)
	offer := entity.NewTransaction(userID, day(2025, time.July, 1), money("9000"), entity.DirectionIncoming, "Offerte Grosskunde", "", true)

	txns := []*entity.Transaction{invoice, paid, rent, offer}
	require.NoError(t, repo.BulkCreate(context.Background(), txns))
	return txns
}

func TestTransactionRepository_FindByUserOrdersByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()
	seedTransactions(t, repo, userID)
	seedTransactions(t, repo, uuid.New())

	txns, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, txns, 4)

	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].Date.Before(txns[i-1].Date))
	}
	assert.Equal(t, day(2025, time.May, 20), txns[0].Date)
	assert.True(t, txns[0].Settled)
	assert.True(t, txns[3].IsSimulation)
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()
	txns := seedTransactions(t, repo, userID)

	incoming := entity.DirectionIncoming
	start := day(2025, time.June, 1)
	end := day(2025, time.June, 30)

	tests := []struct {
		name     string
		filter   adapter.TransactionFilter
		expected []uuid.UUID
	}{
		{
			name:     "date range excludes simulations by default",
			filter:   adapter.TransactionFilter{UserID: userID, StartDate: &start, EndDate: &end},
			expected: []uuid.UUID{txns[2].ID, txns[0].ID},
		},
		{
			name:     "open incoming invoices",
			filter:   adapter.TransactionFilter{UserID: userID, Direction: &incoming, OpenOnly: true},
			expected: []uuid.UUID{txns[0].ID},
		},
		{
			name:     "search is case-insensitive",
			filter:   adapter.TransactionFilter{UserID: userID, Search: "müller", IncludeSimulated: true},
			expected: []uuid.UUID{txns[0].ID},
		},
		{
			name:     "including simulations",
			filter:   adapter.TransactionFilter{UserID: userID, Direction: &incoming, IncludeSimulated: true},
			expected: []uuid.UUID{txns[1].ID, txns[0].ID, txns[3].ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByFilter(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]uuid.UUID, len(found))
			for i, txn := range found {
				ids[i] = txn.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestTransactionRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(newTestDB(t))
	txn := entity.NewTransaction(uuid.New(), day(2025, time.June, 10), money("4000"), entity.DirectionIncoming, "Rechnung", "Umsatz", false)
	require.NoError(t, repo.Create(ctx, txn))

	txn.Settled = true
	require.NoError(t, repo.Update(ctx, txn))

	found, err := repo.FindByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.True(t, found.Settled)
	assert.True(t, money("4000").Equal(found.Amount))

	require.NoError(t, repo.Delete(ctx, txn.ID))
	_, err = repo.FindByID(ctx, txn.ID)
	assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, txn.ID), domainerror.ErrTransactionNotFound)
}
