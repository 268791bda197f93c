package analytics

import (
	"time"

	"github.com/fingold/fingold-backend/internal/domain"
)

// Include reports whether the expense date falls inside r. Both bounds are
// inclusive and compared by calendar day, so a time of day never excludes an
// expense on the boundary date.
func Include(r domain.DateRange, e *domain.Expense) bool {
	if e == nil {
		return false
	}
	d := calendarDay(e.Date)
	if r.From != nil && d.Before(calendarDay(*r.From)) {
		return false
	}
	if r.To != nil && d.After(calendarDay(*r.To)) {
		return false
	}
	return true
}

// FilterByDateRange keeps the expenses Include accepts, in input order
func FilterByDateRange(expenses []*domain.Expense, r domain.DateRange) []*domain.Expense {
	out := make([]*domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if Include(r, e) {
			out = append(out, e)
		}
	}
	return out
}

// calendarDay drops the time and zone so days from different locations compare
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
