// Package error defines domain-specific errors for the Liq-Planung application.
package error

import "errors"

// Simulation domain errors.
var (
	// ErrSimulationNotFound is returned when a simulation is not found in the system.
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrSimulationIntervalRequired is returned when a recurring simulation has no interval.
	ErrSimulationIntervalRequired = errors.New("recurring simulation requires an interval")

	// ErrInvalidSimulation is returned when the simulation fields are invalid.
	ErrInvalidSimulation = errors.New("invalid simulation")
)

// SimulationErrorCode defines error codes for simulation errors.
// Format: SIM-XXYYYY where XX is category and YYYY is specific error.
type SimulationErrorCode string

const (
	ErrCodeInvalidSimulation          SimulationErrorCode = "SIM-010001"
	ErrCodeSimulationIntervalRequired SimulationErrorCode = "SIM-010002"
	ErrCodeSimulationNotFound         SimulationErrorCode = "SIM-020001"
)

// SimulationError represents a simulation error with code and message.
type SimulationError struct {
	Code    SimulationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError with the given code and message.
func NewSimulationError(code SimulationErrorCode, message string, err error) *SimulationError {
	return &SimulationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
