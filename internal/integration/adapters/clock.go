// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/liq-planung/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface.
type systemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock reporting wall time in the given location.
// "Today" for projections is the calendar day in that location.
func NewSystemClock(location *time.Location) adapter.Clock {
	if location == nil {
		location = time.UTC
	}
	return &systemClock{location: location}
}

// Now returns the current time in the clock's location.
func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}
