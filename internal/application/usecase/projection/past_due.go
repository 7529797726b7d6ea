package projection

import (
	"time"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// IsPastDue reports whether txn is an uncollected incoming invoice dated before today.
func IsPastDue(txn *entity.Transaction, today time.Time) bool {
	return txn.Direction == entity.DirectionIncoming &&
		txn.IsOpen() &&
		calendar.Normalize(txn.Date).Before(calendar.Normalize(today))
}

// ProjectPastDue returns the date an overdue invoice is expected instead:
// the booked date is rolled forward monthly until its weekend-shifted value
// falls on or after today.
func ProjectPastDue(booked, today time.Time) time.Time {
	today = calendar.Normalize(today)
	candidate := calendar.Normalize(booked)

	for steps := 0; steps < MaxOccurrences; steps++ {
		if shifted := calendar.ShiftOffWeekend(candidate); !shifted.Before(today) {
			return shifted
		}
		candidate = calendar.AddInterval(candidate, entity.RhythmMonthly)
	}
	return calendar.NextBusinessDay(today)
}
