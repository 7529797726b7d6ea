// Package calendar provides date arithmetic for recurring schedules.
//
// All dates are calendar days represented as time.Time at midnight UTC.
// time.Time is a value type, so every function returns a new value and
// never mutates its argument.
package calendar

import (
	"time"

	"github.com/liq-planung/backend/internal/domain/entity"
)

// Normalize truncates t to its calendar day at midnight UTC.
// The day is taken in t's own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a normalized calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month, honoring leap years.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n months to date. If the target month is shorter than
// date's day, the result is clamped to the target month's last day instead
// of overflowing into the following month.
func AddMonths(date time.Time, n int) time.Time {
	date = Normalize(date)

	// Step from the first of the month so time.Date never normalizes an overflow.
	first := time.Date(date.Year(), date.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := date.Day()
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// AddInterval advances date by one period of rhythm using AddMonths.
// Iterating on the previous result keeps a clamped day: May 31 steps to
// Jun 30, then Jul 30, Aug 30 and so on.
// An unknown rhythm returns date unchanged.
func AddInterval(date time.Time, rhythm entity.Rhythm) time.Time {
	return AddMonths(date, rhythm.Months())
}

// ShiftOffWeekend moves a Saturday back one day and a Sunday back two days.
// Weekdays are returned unchanged.
func ShiftOffWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, -1)
	case time.Sunday:
		return date.AddDate(0, 0, -2)
	default:
		return date
	}
}

// NextBusinessDay returns date if it is a weekday, otherwise the following Monday.
func NextBusinessDay(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

// StartOfMonth returns the first day of date's month.
func StartOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// EndOfMonth returns the last day of date's month.
func EndOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), DaysIn(date.Year(), date.Month()))
}

// Within reports whether date lies in [from, to], both ends inclusive.
func Within(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}
