// Package fixedcost contains fixed cost and override use cases.
package fixedcost

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for fixed cost names.
const MaxNameLength = 200

// findOwnedFixedCost loads a fixed cost and verifies that it belongs to userID.
func findOwnedFixedCost(
	ctx context.Context,
	repo adapter.FixedCostRepository,
	fixedCostID, userID uuid.UUID,
) (*entity.FixedCost, error) {
	fixedCost, err := repo.FindByID(ctx, fixedCostID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedCostNotFound) {
			return nil, domainerror.NewFixedCostError(
				domainerror.ErrCodeFixedCostNotFound,
				"fixed cost not found",
				domainerror.ErrFixedCostNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed cost: %w", err)
	}

	if fixedCost.UserID != userID {
		return nil, domainerror.NewFixedCostError(
			domainerror.ErrCodeNotAuthorizedFixedCost,
			"not authorized to access this fixed cost",
			domainerror.ErrNotAuthorizedToModifyFixedCost,
		)
	}

	return fixedCost, nil
}

// parseRhythm maps user input to a stored rhythm literal.
func parseRhythm(value string) (entity.Rhythm, error) {
	rhythm, ok := entity.ParseRhythm(value)
	if !ok {
		return "", domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidRhythm,
			"rhythm must be one of: monatlich, quartalsweise, halbjährlich, jährlich",
			domainerror.ErrInvalidRhythm,
		)
	}
	return rhythm, nil
}

// validateFixedCost checks a fixed cost before it is stored.
func validateFixedCost(fc *entity.FixedCost) error {
	name := strings.TrimSpace(fc.Name)
	if name == "" {
		return domainerror.NewFixedCostError(
			domainerror.ErrCodeFixedCostNameRequired,
			"name is required",
			domainerror.ErrFixedCostNameRequired,
		)
	}
	if len(name) > MaxNameLength {
		return domainerror.NewFixedCostError(
			domainerror.ErrCodeFixedCostNameRequired,
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			domainerror.ErrFixedCostNameRequired,
		)
	}

	if err := validateAmount(fc.Amount); err != nil {
		return err
	}

	if fc.StartDate.IsZero() {
		return domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidFixedCostDate,
			"start date is required",
			domainerror.ErrInvalidFixedCostDates,
		)
	}

	if fc.EndDate != nil && fc.EndDate.Before(fc.StartDate) {
		return domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidFixedCostDates,
			"end date must not be before start date",
			domainerror.ErrInvalidFixedCostDates,
		)
	}

	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewFixedCostError(
			domainerror.ErrCodeInvalidFixedCostAmount,
			"amount must not be negative",
			domainerror.ErrInvalidFixedCostAmount,
		)
	}
	return nil
}

func normalizePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := calendar.Normalize(*t)
	return &normalized
}
