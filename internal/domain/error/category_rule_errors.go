// Package error defines domain-specific errors for the Liq-Planung application.
package error

import "errors"

// CategoryRule domain errors.
var (
	// ErrCategoryRuleNotFound is returned when a category rule is not found in the system.
	ErrCategoryRuleNotFound = errors.New("category rule not found")

	// ErrInvalidPattern is returned when the glob pattern is empty or too long.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrCategoryRuleMissingFields is returned when required fields are missing.
	ErrCategoryRuleMissingFields = errors.New("missing required fields")
)

// CategoryRuleErrorCode defines error codes for category rule errors.
// Format: RUL-XXYYYY where XX is category and YYYY is specific error.
type CategoryRuleErrorCode string

const (
	ErrCodeInvalidPattern       CategoryRuleErrorCode = "RUL-010001"
	ErrCodeMissingRuleFields    CategoryRuleErrorCode = "RUL-010002"
	ErrCodeCategoryRuleNotFound CategoryRuleErrorCode = "RUL-020001"
)

// CategoryRuleError represents a category rule error with code and message.
type CategoryRuleError struct {
	Code    CategoryRuleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryRuleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryRuleError) Unwrap() error {
	return e.Err
}

// NewCategoryRuleError creates a new CategoryRuleError with the given code and message.
func NewCategoryRuleError(code CategoryRuleErrorCode, message string, err error) *CategoryRuleError {
	return &CategoryRuleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
