package schedule

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey normalizes a timestamp to its local calendar day as a
// zero-padded YYYY-MM-DD string. Two instants on the same calendar day
// always produce the same key, whatever their time of day.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key back into a local midnight.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", key, err)
	}
	return t, nil
}

// DisplayLabel renders a date for the day header: Today, Tomorrow,
// Yesterday, or weekday plus day and month otherwise.
func DisplayLabel(t, now time.Time) string {
	key := DateKey(t)
	switch key {
	case DateKey(now):
		return "Today"
	case DateKey(now.AddDate(0, 0, 1)):
		return "Tomorrow"
	case DateKey(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return t.Format("Mon, 2 Jan")
}
