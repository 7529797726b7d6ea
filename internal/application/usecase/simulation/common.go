// Package simulation contains simulation-related use cases.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
)

// findOwnedSimulation loads a simulation and hides simulations of other users.
func findOwnedSimulation(
	ctx context.Context,
	repo adapter.SimulationRepository,
	simulationID, userID uuid.UUID,
) (*entity.Simulation, error) {
	simulation, err := repo.FindByID(ctx, simulationID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSimulationNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find simulation: %w", err)
	}

	if simulation.UserID != userID {
		return nil, notFound()
	}
	return simulation, nil
}

func notFound() error {
	return domainerror.NewSimulationError(
		domainerror.ErrCodeSimulationNotFound,
		"simulation not found",
		domainerror.ErrSimulationNotFound,
	)
}

func invalid(message string) error {
	return domainerror.NewSimulationError(
		domainerror.ErrCodeInvalidSimulation,
		message,
		domainerror.ErrInvalidSimulation,
	)
}

// parseInterval maps user input to a rhythm; an empty string means none.
func parseInterval(value *string) (*entity.Rhythm, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	rhythm, ok := entity.ParseRhythm(*value)
	if !ok {
		return nil, invalid("interval must be one of: monatlich, quartalsweise, halbjährlich, jährlich")
	}
	return &rhythm, nil
}

// validateSimulation checks a simulation before it is stored.
func validateSimulation(sim *entity.Simulation) error {
	switch {
	case strings.TrimSpace(sim.Name) == "":
		return invalid("name is required")
	case sim.Amount.IsNegative():
		return invalid("amount must not be negative")
	case !sim.Direction.IsValid():
		return invalid("direction must be 'Incoming' or 'Outgoing'")
	case sim.Date.IsZero():
		return invalid("date is required")
	case sim.EndDate != nil && sim.EndDate.Before(sim.Date):
		return invalid("end date must not be before date")
	case sim.Recurring && sim.Interval == nil:
		return domainerror.NewSimulationError(
			domainerror.ErrCodeSimulationIntervalRequired,
			"recurring simulation requires an interval",
			domainerror.ErrSimulationIntervalRequired,
		)
	}
	return nil
}
