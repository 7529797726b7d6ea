package balance

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

// SetBalanceInput records the balance on a day. A nil Date means today.
type SetBalanceInput struct {
	UserID uuid.UUID
	Amount *decimal.Decimal
	Date   *time.Time
}

// SetBalanceOutput represents the stored snapshot.
type SetBalanceOutput struct {
	Snapshot *entity.BalanceSnapshot
}

// SetBalanceUseCase stores a new balance snapshot. Earlier snapshots are kept
// as history; the latest dated one wins.
type SetBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
	clock       adapter.Clock
}

// NewSetBalanceUseCase creates a new SetBalanceUseCase instance.
func NewSetBalanceUseCase(balanceRepo adapter.BalanceRepository, clock adapter.Clock) *SetBalanceUseCase {
	return &SetBalanceUseCase{
		balanceRepo: balanceRepo,
		clock:       clock,
	}
}

// Execute performs the balance update. The balance may be negative.
func (uc *SetBalanceUseCase) Execute(ctx context.Context, input SetBalanceInput) (*SetBalanceOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidBalance,
			"amount is required",
			domainerror.ErrInvalidBalance,
		)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	snapshot := entity.NewBalanceSnapshot(input.UserID, calendar.Normalize(date), *input.Amount)
	if err := uc.balanceRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save balance: %w", err)
	}

	return &SetBalanceOutput{
		Snapshot: snapshot,
	}, nil
}
