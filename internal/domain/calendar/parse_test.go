package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLocalizedDate(t *testing.T) {
	now := Date(2026, time.October, 15)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{name: "swiss full year", input: "31.05.2025", expected: Date(2025, time.May, 31), ok: true},
		{name: "swiss single digits", input: "1.6.2025", expected: Date(2025, time.June, 1), ok: true},
		{name: "swiss two-digit year", input: "31.05.25", expected: Date(2025, time.May, 31), ok: true},
		{name: "swiss two-digit year last century", input: "01.01.85", expected: Date(1985, time.January, 1), ok: true},
		{name: "swiss without year", input: "24.12.", expected: Date(2026, time.December, 24), ok: true},
		{name: "swiss without year or dot", input: "24.12", expected: Date(2026, time.December, 24), ok: true},
		{name: "german weekday prefix", input: "Mo., 02.06.2025", expected: Date(2025, time.June, 2), ok: true},
		{name: "long weekday prefix", input: "Montag 02.06.2025", expected: Date(2025, time.June, 2), ok: true},
		{name: "weekday suffix", input: "02.06.2025 (Mo)", expected: Date(2025, time.June, 2), ok: true},
		{name: "iso", input: "2025-05-31", expected: Date(2025, time.May, 31), ok: true},
		{name: "rfc3339", input: "2025-05-31T10:00:00Z", expected: Date(2025, time.May, 31), ok: true},
		{name: "surrounding whitespace", input: "  31.05.2025 ", expected: Date(2025, time.May, 31), ok: true},
		{name: "impossible day", input: "31.02.2025", ok: false},
		{name: "leap day in common year", input: "29.02.2025", ok: false},
		{name: "leap day in leap year", input: "29.02.2024", expected: Date(2024, time.February, 29), ok: true},
		{name: "month out of range", input: "12.13.2025", ok: false},
		{name: "three-digit year", input: "12.05.202", ok: false},
		{name: "garbage", input: "morgen", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "us format", input: "05/31/2025", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLocalizedDate(tt.input, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	date := Date(2025, time.June, 2)

	assert.Equal(t, "02.06.2025", FormatSwiss(date))
	assert.Equal(t, "2025-06-02", FormatISO(date))
}
