package projection

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liq-planung/backend/internal/domain/calendar"
	"github.com/liq-planung/backend/internal/domain/entity"
)

// MaxOccurrences bounds the number of steps taken for a single schedule.
const MaxOccurrences = 10000

// overrideKey identifies one scheduled occurrence of a fixed cost.
type overrideKey struct {
	fixedCostID uuid.UUID
	date        time.Time
}

// OverrideIndex looks up overrides by (fixed cost, scheduled date).
// The zero value is an empty index.
type OverrideIndex struct {
	byKey map[overrideKey]*entity.Override
}

// NewOverrideIndex indexes overrides by their composite key. When two
// overrides share a key, the later one wins.
func NewOverrideIndex(overrides []*entity.Override) OverrideIndex {
	index := OverrideIndex{byKey: make(map[overrideKey]*entity.Override, len(overrides))}
	for _, o := range overrides {
		if o == nil {
			continue
		}
		index.byKey[overrideKey{o.FixedCostID, calendar.Normalize(o.OriginalDate)}] = o
	}
	return index
}

// Lookup returns the override for the given occurrence, if any.
func (i OverrideIndex) Lookup(fixedCostID uuid.UUID, date time.Time) (*entity.Override, bool) {
	if i.byKey == nil {
		return nil, false
	}
	o, ok := i.byKey[overrideKey{fixedCostID, calendar.Normalize(date)}]
	return o, ok
}

// Len returns the number of indexed overrides.
func (i OverrideIndex) Len() int {
	return len(i.byKey)
}

// schedule describes a recurring series independent of its source record.
type schedule struct {
	start  time.Time
	end    *time.Time
	rhythm entity.Rhythm
}

// walk calls visit for every un-shifted candidate date in [from, to] that
// also lies on or before the schedule's end. Candidates before from are
// stepped over without being visited; stepping always continues from the
// un-shifted candidate so the cadence is never disturbed.
func (s schedule) walk(from, to time.Time, visit func(candidate time.Time)) error {
	if !s.rhythm.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownRhythm, s.rhythm)
	}

	limit := calendar.Normalize(to)
	if s.end != nil && calendar.Normalize(*s.end).Before(limit) {
		limit = calendar.Normalize(*s.end)
	}
	from = calendar.Normalize(from)

	candidate := calendar.Normalize(s.start)
	for steps := 0; !candidate.After(limit); steps++ {
		if steps >= MaxOccurrences {
			return ErrTooManyOccurrences
		}
		if !candidate.Before(from) {
			visit(candidate)
		}

		next := calendar.AddInterval(candidate, s.rhythm)
		if !next.After(candidate) {
			return ErrNonAdvancingRecurrence
		}
		candidate = next
	}
	return nil
}

// ExpandOccurrences expands a fixed cost into ledger entries for every
// occurrence whose scheduled date lies in [windowStart, windowEnd].
//
// Each occurrence is looked up in overrides: a skipped override suppresses
// it, otherwise NewDate and NewAmount replace the weekend-shifted date and
// the fixed cost's amount. Entries carry a negative amount and no running
// balance; BuildLedger fills that in.
func ExpandOccurrences(
	fixedCost *entity.FixedCost,
	windowStart, windowEnd time.Time,
	overrides OverrideIndex,
) ([]entity.LedgerEntry, error) {
	if err := validateFixedCost(fixedCost); err != nil {
		return nil, err
	}

	var entries []entity.LedgerEntry
	s := schedule{start: fixedCost.StartDate, end: fixedCost.EndDate, rhythm: fixedCost.Rhythm}
	err := s.walk(windowStart, windowEnd, func(candidate time.Time) {
		date := calendar.ShiftOffWeekend(candidate)
		amount := fixedCost.Amount

		if o, ok := overrides.Lookup(fixedCost.ID, candidate); ok {
			if o.Skipped {
				return
			}
			if o.NewDate != nil {
				date = calendar.Normalize(*o.NewDate)
			}
			if o.NewAmount != nil {
				amount = *o.NewAmount
			}
		}

		entries = append(entries, entity.LedgerEntry{
			Date:         date,
			OriginalDate: movedFrom(candidate, date),
			Amount:       amount.Abs().Neg(),
			Details:      fixedCost.Name,
			Category:     fixedCost.LedgerCategory(),
			SourceKind:   entity.SourceKindFixedCost,
			SourceID:     fixedCost.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ExpandSimulation expands a simulation into ledger entries within
// [windowStart, windowEnd]. A one-off simulation yields at most one entry on
// its date; a recurring one follows its interval like a fixed cost, with the
// weekend shift applied and no overrides.
func ExpandSimulation(sim *entity.Simulation, windowStart, windowEnd time.Time) ([]entity.LedgerEntry, error) {
	if err := validateSimulation(sim); err != nil {
		return nil, err
	}

	entry := func(date, scheduled time.Time) entity.LedgerEntry {
		return entity.LedgerEntry{
			Date:         date,
			OriginalDate: movedFrom(scheduled, date),
			Amount:       sim.Direction.Sign(sim.Amount),
			Details:      sim.Name,
			Category:     sim.LedgerCategory(),
			SourceKind:   entity.SourceKindSimulation,
			SourceID:     sim.ID,
		}
	}

	if !sim.Recurring {
		date := calendar.Normalize(sim.Date)
		if !calendar.Within(date, calendar.Normalize(windowStart), calendar.Normalize(windowEnd)) {
			return nil, nil
		}
		return []entity.LedgerEntry{entry(date, date)}, nil
	}

	var entries []entity.LedgerEntry
	s := schedule{start: sim.Date, end: sim.EndDate, rhythm: *sim.Interval}
	err := s.walk(windowStart, windowEnd, func(candidate time.Time) {
		entries = append(entries, entry(calendar.ShiftOffWeekend(candidate), candidate))
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// HasOccurrence reports whether the fixed cost's rhythm schedules an
// occurrence on date, before any weekend shift or override.
func HasOccurrence(fixedCost *entity.FixedCost, date time.Time) (bool, error) {
	date = calendar.Normalize(date)
	found := false
	s := schedule{start: fixedCost.StartDate, end: fixedCost.EndDate, rhythm: fixedCost.Rhythm}
	err := s.walk(date, date, func(time.Time) { found = true })
	if err != nil {
		return false, err
	}
	return found, nil
}

// movedFrom returns scheduled when the effective date differs from it.
func movedFrom(scheduled, effective time.Time) *time.Time {
	if scheduled.Equal(effective) {
		return nil
	}
	original := scheduled
	return &original
}

func validateFixedCost(fc *entity.FixedCost) error {
	switch {
	case fc.StartDate.IsZero():
		return ErrMissingDate
	case fc.Amount.IsNegative():
		return ErrNegativeAmount
	case !fc.Rhythm.IsValid():
		return fmt.Errorf("%w: %q", ErrUnknownRhythm, fc.Rhythm)
	}
	return nil
}

func validateSimulation(sim *entity.Simulation) error {
	switch {
	case sim.Date.IsZero():
		return ErrMissingDate
	case sim.Amount.IsNegative():
		return ErrNegativeAmount
	case !sim.Direction.IsValid():
		return fmt.Errorf("%w: %q", ErrUnknownDirection, sim.Direction)
	case sim.Recurring && sim.Interval == nil:
		return ErrMissingInterval
	case sim.Recurring && !sim.Interval.IsValid():
		return fmt.Errorf("%w: %q", ErrUnknownRhythm, *sim.Interval)
	}
	return nil
}
