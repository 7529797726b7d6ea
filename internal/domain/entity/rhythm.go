// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Rhythm represents the recurrence cadence of a fixed cost or simulation.
// The values are the literals stored by the existing Liq-Planung data.
type Rhythm string

const (
	RhythmMonthly    Rhythm = "monatlich"
	RhythmQuarterly  Rhythm = "quartalsweise"
	RhythmSemiannual Rhythm = "halbjährlich"
	RhythmAnnual     Rhythm = "jährlich"
)

// rhythmAliases maps accepted spellings to the stored literal.
var rhythmAliases = map[string]Rhythm{
	"monatlich":     RhythmMonthly,
	"monthly":       RhythmMonthly,
	"quartalsweise": RhythmQuarterly,
	"quarterly":     RhythmQuarterly,
	"halbjährlich":  RhythmSemiannual,
	"halbjaehrlich": RhythmSemiannual,
	"semiannual":    RhythmSemiannual,
	"jährlich":      RhythmAnnual,
	"jaehrlich":     RhythmAnnual,
	"annual":        RhythmAnnual,
	"yearly":        RhythmAnnual,
}

// ParseRhythm converts user input into a Rhythm.
// It returns false for unknown values.
func ParseRhythm(value string) (Rhythm, bool) {
	r, ok := rhythmAliases[strings.ToLower(strings.TrimSpace(value))]
	return r, ok
}

// Months returns the number of months between two occurrences, or 0 for an unknown rhythm.
func (r Rhythm) Months() int {
	switch r {
	case RhythmMonthly:
		return 1
	case RhythmQuarterly:
		return 3
	case RhythmSemiannual:
		return 6
	case RhythmAnnual:
		return 12
	default:
		return 0
	}
}

// IsValid reports whether r is one of the stored literals.
func (r Rhythm) IsValid() bool {
	return r.Months() > 0
}
