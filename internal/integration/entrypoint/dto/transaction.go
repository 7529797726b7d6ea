package dto

import (
	"time"

	"github.com/liq-planung/backend/internal/application/usecase/transaction"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date         string  `json:"date" binding:"required"`
	Amount       float64 `json:"amount"`
	Direction    string  `json:"direction" binding:"required,oneof=Incoming Outgoing"`
	Details      string  `json:"details" binding:"max=500"`
	Category     string  `json:"category,omitempty"`
	IsSimulation bool    `json:"is_simulation,omitempty"`
	Settled      bool    `json:"settled,omitempty"`
	FixedCostID  *string `json:"fixed_cost_id,omitempty" binding:"omitempty,uuid"`
}

// ImportTransactionRow is one raw row of an import. All fields are kept as
// text; parsing and validation happen per row.
type ImportTransactionRow struct {
	Date      string `json:"date"`
	Amount    string `json:"amount"`
	Direction string `json:"direction,omitempty"`
	Details   string `json:"details"`
	Category  string `json:"category,omitempty"`
}

// ImportTransactionsRequest represents the request body for a bulk import.
type ImportTransactionsRequest struct {
	Rows         []ImportTransactionRow `json:"rows"`
	IsSimulation bool                   `json:"is_simulation,omitempty"`
}

// SettleTransactionRequest represents the request body for marking an invoice paid.
// Settled defaults to true when omitted.
type SettleTransactionRequest struct {
	Settled *bool `json:"settled,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Amount       float64   `json:"amount"`
	Direction    string    `json:"direction"`
	Details      string    `json:"details"`
	Category     string    `json:"category"`
	IsSimulation bool      `json:"is_simulation"`
	Settled      bool      `json:"settled"`
	FixedCostID  *string   `json:"fixed_cost_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionTotalsResponse holds the sums of a transaction listing.
type TransactionTotalsResponse struct {
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	Net     float64 `json:"net"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// SkippedRowResponse reports an import row that was not stored.
type SkippedRowResponse struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportTransactionsResponse represents the result of a bulk import.
type ImportTransactionsResponse struct {
	ImportedCount int                   `json:"imported_count"`
	Skipped       []SkippedRowResponse  `json:"skipped"`
	Transactions  []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:           txn.ID.String(),
		Date:         Date(txn.Date),
		Amount:       Money(txn.Amount),
		Direction:    string(txn.Direction),
		Details:      txn.Details,
		Category:     txn.Category,
		IsSimulation: txn.IsSimulation,
		Settled:      txn.Settled,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
	if txn.FixedCostID != nil {
		id := txn.FixedCostID.String()
		response.FixedCostID = &id
	}
	return response
}

func toTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, ToTransactionResponse(txn))
	}
	return items
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: toTransactionResponses(output.Transactions),
		Totals: TransactionTotalsResponse{
			Inflow:  Money(output.Totals.Inflow),
			Outflow: Money(output.Totals.Outflow),
			Net:     Money(output.Totals.Net),
		},
	}
}

// ToImportTransactionsResponse converts an ImportTransactionsOutput.
func ToImportTransactionsResponse(output *transaction.ImportTransactionsOutput) ImportTransactionsResponse {
	skipped := make([]SkippedRowResponse, 0, len(output.Skipped))
	for _, s := range output.Skipped {
		skipped = append(skipped, SkippedRowResponse{Row: s.Row, Reason: s.Reason})
	}
	return ImportTransactionsResponse{
		ImportedCount: output.ImportedCount,
		Skipped:       skipped,
		Transactions:  toTransactionResponses(output.Transactions),
	}
}

// ToImportRows converts the request rows to use case rows.
func ToImportRows(rows []ImportTransactionRow) []transaction.ImportRow {
	out := make([]transaction.ImportRow, len(rows))
	for i, r := range rows {
		out[i] = transaction.ImportRow{
			Date:      r.Date,
			Amount:    r.Amount,
			Direction: r.Direction,
			Details:   r.Details,
			Category:  r.Category,
		}
	}
	return out
}
