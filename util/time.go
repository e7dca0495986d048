package util

import "time"

// DaysBetween returns the number of calendar days from a to b, ignoring the time of day.
// Each date is taken in its own location, so 23:00 on one day and 01:00 on the next are one day apart.
func DaysBetween(a, b time.Time) int {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return int(day(b).Sub(day(a)).Hours() / 24)
}
