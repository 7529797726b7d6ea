// Package projection expands recurring schedules and projects cashflows into
// a balance-annotated ledger. Everything in this package is pure: no I/O, no
// clock, no logging. Problems with single records are returned as Issues.
package projection

import (
	"errors"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// Record-level errors. A record that fails with one of these is skipped; the
// rest of the projection continues.
var (
	ErrUnknownRhythm          = errors.New("unknown rhythm")
	ErrNonAdvancingRecurrence = errors.New("recurrence does not advance")
	ErrMissingDate            = errors.New("missing date")
	ErrNegativeAmount         = errors.New("negative amount")
	ErrUnknownDirection       = errors.New("unknown direction")
	ErrMissingInterval        = errors.New("recurring simulation without interval")
	ErrTooManyOccurrences     = errors.New("too many occurrences")
)

// Issue describes an input record that was left out of a projection.
type Issue struct {
	SourceKind entity.SourceKind `json:"source_kind"`
	SourceID   uuid.UUID         `json:"source_id"`
	Reason     string            `json:"reason"`
}

func newIssue(kind entity.SourceKind, id uuid.UUID, err error) Issue {
	return Issue{SourceKind: kind, SourceID: id, Reason: err.Error()}
}
