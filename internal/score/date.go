package score

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of history keys and the last-update marker.
const DateLayout = "2006-01-02"

// legacyDateLayout matches keys written by the browser version of the tracker
// (Date.prototype.toDateString).
const legacyDateLayout = "Mon Jan 02 2006"

// DateKey returns the date identity of t in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a history key into local midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{DateLayout, legacyDateLayout} {
		if d, err := time.ParseInLocation(layout, key, loc); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date key: %q", key)
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent weekStart day on or before ref.
func StartOfWeek(ref time.Time, weekStart time.Weekday) time.Time {
	offset := (int(ref.Weekday()) - int(weekStart) + 7) % 7
	y, m, d := ref.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, ref.Location())
}

// ParseWeekday parses an English weekday name ("sunday", "Mon", ...).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %q", s)
}
