// Package calendar contains the pure date arithmetic used by the workflow handlers.
// Dates are compared at day granularity only; time of day never affects a result.
package calendar

import (
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// HostDateLayout is the MM/DD/YYYY format the host expects when scheduling.
const HostDateLayout = "01/02/2006"

var parseLayouts = []string{"2006-01-02", HostDateLayout, time.RFC3339}

// DayDifference returns the number of whole calendar days from a to b.
// Both values are reduced to midnight UTC of the day they show in their own
// location, so daylight-saving transitions cannot shift the result.
// The result is negative when b precedes a.
func DayDifference(a, b time.Time) (int, error) {
	if a.IsZero() {
		return 0, invalid("DayDifference", "first date is not set")
	}
	if b.IsZero() {
		return 0, invalid("DayDifference", "second date is not set")
	}

	// Both operands sit on UTC midnights, so the quotient is exact. Unix
	// seconds keep spans longer than a time.Duration can hold.
	return int((utcMidnight(b).Unix() - utcMidnight(a).Unix()) / secondsPerDay), nil
}

// AddBusinessDays walks forward from start one calendar day at a time and
// returns the day on which the n-th weekday is reached. Weekends are stepped
// over without counting. n == 0 returns start unchanged, even on a weekend.
func AddBusinessDays(start time.Time, n int) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, invalid("AddBusinessDays", "start date is not set")
	}
	if n < 0 {
		return time.Time{}, invalid("AddBusinessDays", "day count %d is negative", n)
	}

	date := start
	for count := 0; count < n; {
		date = date.AddDate(0, 0, 1)
		if IsBusinessDay(date) {
			count++
		}
	}
	return date, nil
}

// IsBusinessDay reports whether t falls on Monday through Friday.
// Holidays are not considered.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ParseDate accepts ISO dates, host MM/DD/YYYY dates, and RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid("ParseDate", "empty date")
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("ParseDate", "unrecognised date %q", s)
}

// FormatHostDate renders t in the host scheduling format.
func FormatHostDate(t time.Time) string {
	return t.Format(HostDateLayout)
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
