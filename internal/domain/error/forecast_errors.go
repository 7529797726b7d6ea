// Package error defines domain-specific errors for the Liq-Planung application.
package error

import "errors"

// Forecast and balance domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD or DD.MM.YYYY")

	// ErrInvalidGranularity is returned when granularity is not valid.
	ErrInvalidGranularity = errors.New("granularity must be: monthly or quarterly")

	// ErrInvalidBalance is returned when a balance amount cannot be parsed.
	ErrInvalidBalance = errors.New("invalid balance amount")

	// ErrBalanceNotFound is returned when the user has no balance snapshot yet.
	ErrBalanceNotFound = errors.New("balance not found")
)

// ForecastErrorCode defines error codes for forecast errors.
// Format: FCS-XXYYYY where XX is category and YYYY is specific error.
type ForecastErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate   ForecastErrorCode = "FCS-010001"
	ErrCodeMissingEndDate     ForecastErrorCode = "FCS-010002"
	ErrCodeInvalidDateRange   ForecastErrorCode = "FCS-010003"
	ErrCodeInvalidDateFormat  ForecastErrorCode = "FCS-010004"
	ErrCodeInvalidGranularity ForecastErrorCode = "FCS-010005"
	ErrCodeInvalidBalance     ForecastErrorCode = "FCS-010006"

	// Lookup errors (02XXXX)
	ErrCodeBalanceNotFound ForecastErrorCode = "FCS-020001"

	// Internal errors (99XXXX)
	ErrCodeForecastInternalError ForecastErrorCode = "FCS-990001"
)

// ForecastError represents a forecast error with code and message.
type ForecastError struct {
	Code    ForecastErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ForecastError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError creates a new ForecastError with the given code and message.
func NewForecastError(code ForecastErrorCode, message string, err error) *ForecastError {
	return &ForecastError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
