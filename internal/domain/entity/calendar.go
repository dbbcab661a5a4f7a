package entity

import "time"

// MonthBounds returns the first and last day of t's calendar month, both at
// midnight UTC. Ranges built from them are inclusive on both ends.
func MonthBounds(t time.Time) (start, end time.Time) {
	year, month, _ := t.Date()
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// TruncateToMonth returns t normalized to the first day of its month at
// midnight UTC
func TruncateToMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}
