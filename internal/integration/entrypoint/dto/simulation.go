package dto

import (
	"time"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// CreateSimulationRequest represents the request body for simulation creation.
type CreateSimulationRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction" binding:"required,oneof=Incoming Outgoing"`
	Date      string  `json:"date" binding:"required"`
	Recurring bool    `json:"recurring"`
	Interval  *string `json:"interval,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// UpdateSimulationRequest represents the request body for simulation update.
type UpdateSimulationRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,max=200"`
	Amount       *float64 `json:"amount,omitempty"`
	Direction    *string  `json:"direction,omitempty" binding:"omitempty,oneof=Incoming Outgoing"`
	Date         *string  `json:"date,omitempty"`
	Recurring    *bool    `json:"recurring,omitempty"`
	Interval     *string  `json:"interval,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	ClearEndDate bool     `json:"clear_end_date,omitempty"`
	Active       *bool    `json:"active,omitempty"`
	Category     *string  `json:"category,omitempty"`
}

// SimulationResponse represents a single simulation in API responses.
type SimulationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Direction string    `json:"direction"`
	Date      string    `json:"date"`
	Recurring bool      `json:"recurring"`
	Interval  *string   `json:"interval"`
	EndDate   *string   `json:"end_date"`
	Active    bool      `json:"active"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SimulationListResponse represents the response for listing simulations.
type SimulationListResponse struct {
	Simulations []SimulationResponse `json:"simulations"`
}

// ToSimulationResponse converts a domain Simulation to a SimulationResponse DTO.
func ToSimulationResponse(sim *entity.Simulation) SimulationResponse {
	response := SimulationResponse{
		ID:        sim.ID.String(),
		Name:      sim.Name,
		Amount:    Money(sim.Amount),
		Direction: string(sim.Direction),
		Date:      Date(sim.Date),
		Recurring: sim.Recurring,
		EndDate:   DatePtr(sim.EndDate),
		Active:    sim.Active,
		Category:  sim.Category,
		CreatedAt: sim.CreatedAt,
		UpdatedAt: sim.UpdatedAt,
	}
	if sim.Interval != nil {
		interval := string(*sim.Interval)
		response.Interval = &interval
	}
	return response
}

// ToSimulationListResponse converts a list of domain Simulations.
func ToSimulationListResponse(simulations []*entity.Simulation) SimulationListResponse {
	items := make([]SimulationResponse, 0, len(simulations))
	for _, sim := range simulations {
		items = append(items, ToSimulationResponse(sim))
	}
	return SimulationListResponse{Simulations: items}
}
