// Package balance contains use cases for the account balance ("Kontostand").
package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// GetBalanceInput represents the input for reading the current balance.
type GetBalanceInput struct {
	UserID uuid.UUID
}

// GetBalanceOutput represents the latest balance snapshot.
type GetBalanceOutput struct {
	Snapshot *entity.BalanceSnapshot
}

// GetBalanceUseCase returns the latest balance snapshot.
type GetBalanceUseCase struct {
	balanceRepo adapter.BalanceRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(balanceRepo adapter.BalanceRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		balanceRepo: balanceRepo,
	}
}

// Execute returns the snapshot with the latest date.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	snapshot, err := uc.balanceRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBalanceNotFound) {
			return nil, domainerror.NewForecastError(
				domainerror.ErrCodeBalanceNotFound,
				"no balance recorded",
				domainerror.ErrBalanceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	return &GetBalanceOutput{
		Snapshot: snapshot,
	}, nil
}
