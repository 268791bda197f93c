package util

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire
const DateLayout = "2006-01-02"

// MonthKey returns the "YYYY-MM" key of t in t's own location
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthKeyOf returns the "YYYY-MM" key for a year and 1-indexed month
func MonthKeyOf(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string as a calendar date in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}
