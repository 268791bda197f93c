package service

import (
	"time"

	"github.com/fingold/fingold-backend/internal/util"
)

// Clock supplies "now" and "today" in the configured location
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock creates a clock backed by time.Now
func NewClock(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc, now: time.Now}
}

// NewFixedClock creates a clock frozen at t, in t's location
func NewFixedClock(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Location returns the clock's location
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current time in the clock's location
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns midnight of the current day
func (c *Clock) Today() time.Time {
	return util.StartOfDay(c.Now())
}

// Date returns midnight of t's calendar day as seen in the clock's location
func (c *Clock) Date(t time.Time) time.Time {
	return util.StartOfDay(t.In(c.loc))
}
