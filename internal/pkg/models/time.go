package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// DateOf truncates a timestamp to its calendar date in UTC. Attendance
// records are keyed by this date.
func DateOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
