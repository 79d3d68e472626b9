// Package dateutil holds the calendar-date helpers shared by leave, attendance
// and holiday. A "date" is a time.Time at 00:00 UTC so it round-trips through
// postgres DATE columns unchanged.
package dateutil

import (
	"time"
)

const Layout = "2006-01-02"

// Clock yields the current instant. Services take one so tests can pin "today".
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock always returns t.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Parse reads a YYYY-MM-DD string into a date.
func Parse(v string) (time.Time, error) {
	return time.Parse(Layout, v)
}

// Truncate drops the clock part of t as seen in t's own location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the calendar date of clock's instant in loc.
func Today(clock Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Truncate(clock.Now().In(loc))
}

// InclusiveDays counts the days in [start, end]; 2024-01-10..2024-01-12 is 3.
func InclusiveDays(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours()/24) + 1
}

func Format(t time.Time) string {
	return t.Format(Layout)
}
