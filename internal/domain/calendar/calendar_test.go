package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/liq-planung/backend/internal/domain/entity"
)

func TestAddInterval(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		rhythm   entity.Rhythm
		expected time.Time
	}{
		{
			name:     "May 31 monthly clamps to June 30",
			date:     Date(2025, time.May, 31),
			rhythm:   entity.RhythmMonthly,
			expected: Date(2025, time.June, 30),
		},
		{
			name:     "Feb 28 monthly keeps day 28",
			date:     Date(2025, time.February, 28),
			rhythm:   entity.RhythmMonthly,
			expected: Date(2025, time.March, 28),
		},
		{
			name:     "Mar 31 quarterly clamps to June 30",
			date:     Date(2025, time.March, 31),
			rhythm:   entity.RhythmQuarterly,
			expected: Date(2025, time.June, 30),
		},
		{
			name:     "Jan 31 semiannual stays on July 31",
			date:     Date(2025, time.January, 31),
			rhythm:   entity.RhythmSemiannual,
			expected: Date(2025, time.July, 31),
		},
		{
			name:     "Jul 31 annual",
			date:     Date(2025, time.July, 31),
			rhythm:   entity.RhythmAnnual,
			expected: Date(2026, time.July, 31),
		},
		{
			name:     "Jan 31 monthly in a leap year clamps to Feb 29",
			date:     Date(2024, time.January, 31),
			rhythm:   entity.RhythmMonthly,
			expected: Date(2024, time.February, 29),
		},
		{
			name:     "Jan 31 monthly in a common year clamps to Feb 28",
			date:     Date(2025, time.January, 31),
			rhythm:   entity.RhythmMonthly,
			expected: Date(2025, time.February, 28),
		},
		{
			name:     "Feb 29 annual clamps to Feb 28",
			date:     Date(2024, time.February, 29),
			rhythm:   entity.RhythmAnnual,
			expected: Date(2025, time.February, 28),
		},
		{
			name:     "Nov 30 quarterly crosses the year",
			date:     Date(2025, time.November, 30),
			rhythm:   entity.RhythmQuarterly,
			expected: Date(2026, time.February, 28),
		},
		{
			name:     "unknown rhythm does not advance",
			date:     Date(2025, time.March, 3),
			rhythm:   entity.Rhythm("weekly"),
			expected: Date(2025, time.March, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddInterval(tt.date, tt.rhythm))
		})
	}
}

func TestAddInterval_ClampPropagates(t *testing.T) {
	expected := []time.Time{
		Date(2025, time.June, 30),
		Date(2025, time.July, 30),
		Date(2025, time.August, 30),
		Date(2025, time.September, 30),
		Date(2025, time.October, 30),
		Date(2025, time.November, 30),
		Date(2025, time.December, 30),
		Date(2026, time.January, 30),
		Date(2026, time.February, 28),
		Date(2026, time.March, 28),
		Date(2026, time.April, 28),
		Date(2026, time.May, 28),
	}

	current := Date(2025, time.May, 31)
	for i, want := range expected {
		current = AddInterval(current, entity.RhythmMonthly)
		assert.Equal(t, want, current, "step %d", i+1)
	}
}

func TestAddMonths_DoesNotMutateInput(t *testing.T) {
	original := Date(2025, time.May, 31)
	input := original

	_ = AddMonths(input, 1)

	assert.Equal(t, original, input)
}

func TestAddMonths_NormalizesTimeOfDay(t *testing.T) {
	zurich := time.FixedZone("CEST", 2*60*60)

	got := AddMonths(time.Date(2025, time.May, 31, 23, 30, 0, 0, zurich), 1)

	assert.Equal(t, Date(2025, time.June, 30), got)
}

func TestShiftOffWeekend(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{"Saturday moves to Friday", Date(2025, time.May, 31), Date(2025, time.May, 30)},
		{"Sunday moves to Friday", Date(2025, time.June, 1), Date(2025, time.May, 30)},
		{"Monday unchanged", Date(2025, time.June, 2), Date(2025, time.June, 2)},
		{"Friday unchanged", Date(2025, time.May, 30), Date(2025, time.May, 30)},
		{"Sunday crossing month boundary", Date(2025, time.March, 2), Date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShiftOffWeekend(tt.date))
		})
	}
}

func TestNextBusinessDay(t *testing.T) {
	assert.Equal(t, Date(2025, time.June, 2), NextBusinessDay(Date(2025, time.May, 31)))
	assert.Equal(t, Date(2025, time.June, 2), NextBusinessDay(Date(2025, time.June, 1)))
	assert.Equal(t, Date(2025, time.June, 3), NextBusinessDay(Date(2025, time.June, 3)))
}

func TestMonthBounds(t *testing.T) {
	assert.Equal(t, Date(2024, time.February, 1), StartOfMonth(Date(2024, time.February, 17)))
	assert.Equal(t, Date(2024, time.February, 29), EndOfMonth(Date(2024, time.February, 17)))
	assert.Equal(t, Date(2025, time.December, 31), EndOfMonth(Date(2025, time.December, 1)))
}

func TestWithin(t *testing.T) {
	from := Date(2025, time.May, 1)
	to := Date(2025, time.May, 31)

	assert.True(t, Within(from, from, to))
	assert.True(t, Within(to, from, to))
	assert.False(t, Within(Date(2025, time.April, 30), from, to))
	assert.False(t, Within(Date(2025, time.June, 1), from, to))
}
