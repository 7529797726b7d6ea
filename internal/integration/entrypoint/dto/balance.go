package dto

import (
	"time"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// SetBalanceRequest represents the request body for recording the account balance.
type SetBalanceRequest struct {
	Amount *float64 `json:"amount"`
	Date   *string  `json:"date,omitempty"`
}

// BalanceResponse represents the latest balance snapshot.
type BalanceResponse struct {
	Amount     float64   `json:"amount"`
	Date       string    `json:"date"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ToBalanceResponse converts a domain BalanceSnapshot to a BalanceResponse DTO.
func ToBalanceResponse(snapshot *entity.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		Amount:     Money(snapshot.Amount),
		Date:       Date(snapshot.Date),
		RecordedAt: snapshot.CreatedAt,
	}
}
