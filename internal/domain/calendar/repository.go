package calendar

import (
	"context"
	"time"
)

// DaySet is a set of calendar dates keyed by YYYY-MM-DD.
type DaySet map[string]bool

// Contains reports whether the set holds the given date.
func (s DaySet) Contains(date time.Time) bool {
	return s[date.Format("2006-01-02")]
}

// CalendarRepository is the leave/holiday provider contract. Leave approval
// itself happens in the personnel system; only the approved outcome is read.
type CalendarRepository interface {
	// LeaveDates returns the approved whole-day leave dates for an employee
	// within [from, to].
	LeaveDates(ctx context.Context, employeeID string, from, to time.Time) (DaySet, error)

	// HolidayDates returns the non-working holidays within [from, to].
	HolidayDates(ctx context.Context, from, to time.Time) (DaySet, error)
}
