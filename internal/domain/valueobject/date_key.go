// Package valueobject contains domain value objects for the Ibadah Tracker system.
package valueobject

import (
	"strconv"
	"strings"
	"time"
)

// DateKeyLayout is the canonical layout of a calendar-day key.
const DateKeyLayout = "2006-01-02"

// DateKey returns the YYYY-MM-DD key of the calendar day t falls on, in t's own location.
// It is the only join key between day logs and aggregation queries.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
// Only the canonical form is accepted: no surrounding whitespace, zero-padded fields.
func ParseDateKey(key string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	if len(key) != len(DateKeyLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil || DateKey(t) != key {
		return time.Time{}, false
	}
	return t, true
}

// IsDateKey reports whether key is a canonical calendar-day key. Day logs are keyed by it verbatim.
func IsDateKey(key string) bool {
	_, ok := ParseDateKey(key, time.UTC)
	return ok
}

// AddDays shifts a date key by n calendar days. Malformed keys are returned unchanged.
func AddDays(key string, n int) string {
	t, ok := ParseDateKey(key, time.UTC)
	if !ok {
		return key
	}
	return DateKey(t.AddDate(0, 0, n))
}

// DaysBetween returns the number of calendar days from a to b (negative when b is before a).
func DaysBetween(a, b string) (int, bool) {
	ta, ok := ParseDateKey(a, time.UTC)
	if !ok {
		return 0, false
	}
	tb, ok := ParseDateKey(b, time.UTC)
	if !ok {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseClock parses a "HH:MM" wall-clock string.
func ParseClock(hhmm string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// MinutesSince returns the signed whole minutes elapsed between the scheduled "HH:MM" time on
// now's calendar day and now. Negative values mean the time has not been reached yet.
// The scheduled time is already local, so no timezone conversion is applied.
func MinutesSince(now time.Time, scheduled string) (int, bool) {
	h, m, ok := ParseClock(scheduled)
	if !ok {
		return 0, false
	}
	y, mo, d := now.Date()
	at := time.Date(y, mo, d, h, m, 0, 0, now.Location())
	diff := now.Sub(at)
	minutes := int(diff / time.Minute)
	// Truncation rounds toward zero; a few seconds before the time is still "not reached".
	if diff < 0 && diff%time.Minute != 0 {
		minutes--
	}
	return minutes, true
}
