package dto

import (
	"time"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// CreateFixedCostRequest represents the request body for fixed cost creation.
type CreateFixedCostRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	Amount    float64 `json:"amount"`
	Rhythm    string  `json:"rhythm" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// UpdateFixedCostRequest represents the request body for fixed cost update.
type UpdateFixedCostRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,max=200"`
	Amount       *float64 `json:"amount,omitempty"`
	Rhythm       *string  `json:"rhythm,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	ClearEndDate bool     `json:"clear_end_date,omitempty"`
	Category     *string  `json:"category,omitempty"`
}

// UpsertOverrideRequest represents the request body for adjusting one occurrence.
type UpsertOverrideRequest struct {
	OriginalDate string   `json:"original_date" binding:"required"`
	NewDate      *string  `json:"new_date,omitempty"`
	NewAmount    *float64 `json:"new_amount,omitempty"`
	Skipped      bool     `json:"skipped"`
	Notes        *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// FixedCostResponse represents a single fixed cost in API responses.
type FixedCostResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Rhythm    string    `json:"rhythm"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FixedCostListResponse represents the response for listing fixed costs.
type FixedCostListResponse struct {
	FixedCosts []FixedCostResponse `json:"fixed_costs"`
}

// OverrideResponse represents a single occurrence override.
type OverrideResponse struct {
	ID           string   `json:"id"`
	FixedCostID  string   `json:"fixed_cost_id"`
	OriginalDate string   `json:"original_date"`
	NewDate      *string  `json:"new_date"`
	NewAmount    *float64 `json:"new_amount"`
	Skipped      bool     `json:"skipped"`
	Notes        *string  `json:"notes"`
}

// OverrideListResponse represents the response for listing overrides.
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// OccurrenceResponse is one expanded occurrence of a fixed cost.
type OccurrenceResponse struct {
	Date         string  `json:"date"`
	OriginalDate *string `json:"original_date,omitempty"`
	Amount       float64 `json:"amount"`
	Category     string  `json:"category"`
}

// OccurrenceListResponse represents the occurrence preview of a fixed cost.
type OccurrenceListResponse struct {
	FixedCost   FixedCostResponse    `json:"fixed_cost"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// ToFixedCostResponse converts a domain FixedCost to a FixedCostResponse DTO.
func ToFixedCostResponse(fc *entity.FixedCost) FixedCostResponse {
	return FixedCostResponse{
		ID:        fc.ID.String(),
		Name:      fc.Name,
		Amount:    Money(fc.Amount),
		Rhythm:    string(fc.Rhythm),
		StartDate: Date(fc.StartDate),
		EndDate:   DatePtr(fc.EndDate),
		Category:  fc.Category,
		CreatedAt: fc.CreatedAt,
		UpdatedAt: fc.UpdatedAt,
	}
}

// ToFixedCostListResponse converts a list of domain FixedCosts.
func ToFixedCostListResponse(fixedCosts []*entity.FixedCost) FixedCostListResponse {
	items := make([]FixedCostResponse, 0, len(fixedCosts))
	for _, fc := range fixedCosts {
		items = append(items, ToFixedCostResponse(fc))
	}
	return FixedCostListResponse{FixedCosts: items}
}

// ToOverrideResponse converts a domain Override to an OverrideResponse DTO.
func ToOverrideResponse(o *entity.Override) OverrideResponse {
	return OverrideResponse{
		ID:           o.ID.String(),
		FixedCostID:  o.FixedCostID.String(),
		OriginalDate: Date(o.OriginalDate),
		NewDate:      DatePtr(o.NewDate),
		NewAmount:    MoneyPtr(o.NewAmount),
		Skipped:      o.Skipped,
		Notes:        o.Notes,
	}
}

// ToOverrideListResponse converts a list of domain Overrides.
func ToOverrideListResponse(overrides []*entity.Override) OverrideListResponse {
	items := make([]OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		items = append(items, ToOverrideResponse(o))
	}
	return OverrideListResponse{Overrides: items}
}

// ToOccurrenceListResponse converts an occurrence preview.
func ToOccurrenceListResponse(fc *entity.FixedCost, entries []entity.LedgerEntry) OccurrenceListResponse {
	items := make([]OccurrenceResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, OccurrenceResponse{
			Date:         Date(e.Date),
			OriginalDate: DatePtr(e.OriginalDate),
			Amount:       Money(e.Amount),
			Category:     e.Category,
		})
	}
	return OccurrenceListResponse{
		FixedCost:   ToFixedCostResponse(fc),
		Occurrences: items,
	}
}
