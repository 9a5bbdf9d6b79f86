package utils

import "time"

const DateLayout = "2006-01-02"

// DaysInclusive counts calendar days between start and end, both ends
// included. An inverted range counts as zero.
func DaysInclusive(start, end time.Time) int {
	s := truncateToDate(start)
	e := truncateToDate(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DayKey renders the calendar date of t for use as a timeline bucket key.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
