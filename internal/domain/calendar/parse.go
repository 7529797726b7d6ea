package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// SwissLayout is the dd.mm.yyyy format used throughout the UI.
	SwissLayout = "02.01.2006"
	// ISOLayout is the yyyy-mm-dd format used on the wire.
	ISOLayout = "2006-01-02"
)

// Two-digit years below the pivot are 20xx, the rest 19xx.
const twoDigitYearPivot = 69

var (
	swissDatePattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.(\d{4}|\d{2})?)?$`)
	weekdayPrefix    = regexp.MustCompile(`^\p{L}{2,10}\.?,?\s+`)
	weekdaySuffix    = regexp.MustCompile(`\s+\(?\p{L}{2,10}\.?\)?$`)
)

// dateParser is one step of the fallback chain.
type dateParser func(text string, now time.Time) (time.Time, bool)

var dateParsers = []dateParser{
	parseSwiss,
	parseISO,
	parseRFC3339,
}

// ParseLocalizedDate parses Swiss (dd.mm.yyyy, dd.mm.yy, dd.mm.) and ISO
// (yyyy-mm-dd) dates, optionally decorated with a day-of-week such as
// "Mo., 12.05.2025" or "12.05.2025 (Mo)". A missing year defaults to now's
// year. The second return value is false when no format matches or the date
// does not exist.
func ParseLocalizedDate(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, candidate := range withoutWeekday(text) {
		for _, parse := range dateParsers {
			if date, ok := parse(candidate, now); ok {
				return date, true
			}
		}
	}
	return time.Time{}, false
}

// withoutWeekday returns text followed by its variants with a weekday token removed.
func withoutWeekday(text string) []string {
	candidates := []string{text}
	if stripped := weekdayPrefix.ReplaceAllString(text, ""); stripped != text {
		candidates = append(candidates, stripped)
	}
	if stripped := weekdaySuffix.ReplaceAllString(text, ""); stripped != text {
		candidates = append(candidates, stripped)
	}
	return candidates
}

func parseSwiss(text string, now time.Time) (time.Time, bool) {
	match := swissDatePattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])

	year := now.Year()
	if match[3] != "" {
		year, _ = strconv.Atoi(match[3])
		if len(match[3]) == 2 {
			if year < twoDigitYearPivot {
				year += 2000
			} else {
				year += 1900
			}
		}
	}

	if month < 1 || month > 12 || day < 1 || day > DaysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	return Date(year, time.Month(month), day), true
}

func parseISO(text string, _ time.Time) (time.Time, bool) {
	date, err := time.Parse(ISOLayout, text)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func parseRFC3339(text string, _ time.Time) (time.Time, bool) {
	date, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, false
	}
	return Normalize(date), true
}

// FormatSwiss formats date as dd.mm.yyyy.
func FormatSwiss(date time.Time) string {
	return date.Format(SwissLayout)
}

// FormatISO formats date as yyyy-mm-dd.
func FormatISO(date time.Time) string {
	return date.Format(ISOLayout)
}
