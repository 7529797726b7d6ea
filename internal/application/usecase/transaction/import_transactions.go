package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// ImportRow is one raw row of a bank or bookkeeping export.
// Date accepts Swiss and ISO notations; Amount accepts Swiss thousands
// separators ("1'250.50"). A negative amount without a direction is booked
// as outgoing; with an incoming direction the row is skipped.
type ImportRow struct {
	Date      string
	Amount    string
	Direction string
	Details   string
	Category  string
}

// ImportTransactionsInput represents the input for importing transactions.
type ImportTransactionsInput struct {
	UserID       uuid.UUID
	Rows         []ImportRow
	IsSimulation bool
}

// SkippedRow reports a row that could not be imported.
type SkippedRow struct {
	Row    int // 1-based
	Reason string
}

// ImportTransactionsOutput represents the output of an import.
type ImportTransactionsOutput struct {
	ImportedCount int
	Skipped       []SkippedRow
	Transactions  []*entity.Transaction
}

// ImportTransactionsUseCase handles bulk import of transaction rows.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

var (
	errUnparsableAmount        = errors.New("amount is not a number")
	errSignContradictsIncoming = errors.New("negative amount for an incoming row")
)

// Execute imports every valid row and reports the others.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	if len(input.Rows) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyImport,
			"at least one row is required",
			domainerror.ErrEmptyImport,
		)
	}

	now := uc.clock.Now()
	output := &ImportTransactionsOutput{
		Skipped:      []SkippedRow{},
		Transactions: []*entity.Transaction{},
	}

	for i, row := range input.Rows {
		transaction, err := parseRow(input.UserID, row, now, input.IsSimulation)
		if err != nil {
			output.Skipped = append(output.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		output.Transactions = append(output.Transactions, transaction)
	}

	if len(output.Transactions) > 0 {
		if err := uc.transactionRepo.BulkCreate(ctx, output.Transactions); err != nil {
			return nil, fmt.Errorf("failed to import transactions: %w", err)
		}
	}
	output.ImportedCount = len(output.Transactions)

	if len(output.Skipped) > 0 {
		slog.Warn("Skipped rows during transaction import",
			"user_id", input.UserID,
			"imported", output.ImportedCount,
			"skipped", len(output.Skipped),
		)
	}

	return output, nil
}

func parseRow(userID uuid.UUID, row ImportRow, now time.Time, isSimulation bool) (*entity.Transaction, error) {
	date, ok := calendar.ParseLocalizedDate(row.Date, now)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domainerror.ErrInvalidTransactionDate, row.Date)
	}

	amount, err := parseAmount(row.Amount)
	if err != nil {
		return nil, err
	}

	direction, err := parseDirection(row.Direction, amount)
	if err != nil {
		return nil, err
	}
	if direction == entity.DirectionIncoming && amount.IsNegative() {
		return nil, fmt.Errorf("%w: %q", errSignContradictsIncoming, row.Amount)
	}
	amount = amount.Abs()

	details := strings.TrimSpace(row.Details)
	if err := validateTransaction(amount, direction, details); err != nil {
		return nil, err
	}

	return entity.NewTransaction(userID, date, amount, direction, details, strings.TrimSpace(row.Category), isSimulation), nil
}

// parseAmount accepts "1250.50", "1'250.50", "-80" and "CHF 99.90".
func parseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "CHF")
	cleaned = strings.NewReplacer("'", "", "’", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", errUnparsableAmount, text)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errUnparsableAmount, text)
	}
	return amount, nil
}

func parseDirection(text string, amount decimal.Decimal) (entity.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		if amount.IsNegative() {
			return entity.DirectionOutgoing, nil
		}
		return entity.DirectionIncoming, nil
	case "incoming", "eingang", "einnahme":
		return entity.DirectionIncoming, nil
	case "outgoing", "ausgang", "ausgabe":
		return entity.DirectionOutgoing, nil
	default:
		return "", fmt.Errorf("%w: %q", domainerror.ErrInvalidDirection, text)
	}
}
