// Package error defines domain-specific errors for the Liq-Planung application.
package error

import "errors"

// Fixed cost domain errors.
var (
	// ErrFixedCostNotFound is returned when a fixed cost is not found in the system.
	ErrFixedCostNotFound = errors.New("fixed cost not found")

	// ErrInvalidRhythm is returned when the rhythm is not one of the supported cadences.
	ErrInvalidRhythm = errors.New("invalid rhythm")

	// ErrInvalidFixedCostAmount is returned when the amount is negative.
	ErrInvalidFixedCostAmount = errors.New("invalid fixed cost amount")

	// ErrInvalidFixedCostDates is returned when the end date precedes the start date.
	ErrInvalidFixedCostDates = errors.New("end date must not be before start date")

	// ErrFixedCostNameRequired is returned when the name is empty.
	ErrFixedCostNameRequired = errors.New("name is required")

	// ErrOverrideNotFound is returned when no override exists for an occurrence.
	ErrOverrideNotFound = errors.New("override not found")

	// ErrNoSuchOccurrence is returned when an override targets a date the rhythm does not generate.
	ErrNoSuchOccurrence = errors.New("fixed cost has no occurrence on this date")

	// ErrNotAuthorizedToModifyFixedCost is returned when the fixed cost belongs to another user.
	ErrNotAuthorizedToModifyFixedCost = errors.New("not authorized to modify fixed cost")
)

// FixedCostErrorCode defines error codes for fixed cost errors.
// Format: FXC-XXYYYY where XX is category and YYYY is specific error.
type FixedCostErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRhythm          FixedCostErrorCode = "FXC-010001"
	ErrCodeInvalidFixedCostAmount FixedCostErrorCode = "FXC-010002"
	ErrCodeInvalidFixedCostDates  FixedCostErrorCode = "FXC-010003"
	ErrCodeFixedCostNameRequired  FixedCostErrorCode = "FXC-010004"
	ErrCodeInvalidFixedCostDate   FixedCostErrorCode = "FXC-010005"
	ErrCodeNoSuchOccurrence       FixedCostErrorCode = "FXC-010006"

	// Lookup errors (02XXXX)
	ErrCodeFixedCostNotFound      FixedCostErrorCode = "FXC-020001"
	ErrCodeOverrideNotFound       FixedCostErrorCode = "FXC-020002"
	ErrCodeNotAuthorizedFixedCost FixedCostErrorCode = "FXC-020003"
)

// FixedCostError represents a fixed cost error with code and message.
type FixedCostError struct {
	Code    FixedCostErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedCostError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedCostError) Unwrap() error {
	return e.Err
}

// NewFixedCostError creates a new FixedCostError with the given code and message.
func NewFixedCostError(code FixedCostErrorCode, message string, err error) *FixedCostError {
	return &FixedCostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
