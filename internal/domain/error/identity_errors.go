// Package error defines domain-specific errors for the Liq-Planung application.
package error

import "errors"

// Identity errors. Authentication itself happens upstream; the API only
// reads the user id the gateway forwards.
var (
	// ErrMissingUser is returned when the request carries no user id.
	ErrMissingUser = errors.New("user id is required")

	// ErrInvalidUser is returned when the forwarded user id is not a UUID.
	ErrInvalidUser = errors.New("invalid user id")

	// ErrRateLimited is returned when a caller exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// IdentityErrorCode defines error codes for identity errors.
// Format: IDN-XXYYYY where XX is category and YYYY is specific error.
type IdentityErrorCode string

const (
	ErrCodeMissingUser IdentityErrorCode = "IDN-010001"
	ErrCodeInvalidUser IdentityErrorCode = "IDN-010002"
	ErrCodeRateLimited IdentityErrorCode = "IDN-020001"
)
