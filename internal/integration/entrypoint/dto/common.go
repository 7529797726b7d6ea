// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/domain/calendar"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Money converts a decimal amount to its JSON number.
func Money(amount decimal.Decimal) float64 {
	return amount.InexactFloat64()
}

// MoneyPtr converts an optional decimal amount.
func MoneyPtr(amount *decimal.Decimal) *float64 {
	if amount == nil {
		return nil
	}
	value := Money(*amount)
	return &value
}

// Date formats a calendar day as yyyy-mm-dd.
func Date(date time.Time) string {
	return calendar.FormatISO(date)
}

// DatePtr formats an optional calendar day.
func DatePtr(date *time.Time) *string {
	if date == nil {
		return nil
	}
	value := Date(*date)
	return &value
}
