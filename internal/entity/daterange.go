package entity

import (
	"fmt"
	"time"

	gerr "github.com/evandalmeida/eDashboard/internal/errors"
)

// DateLayout is the calendar-date format used on every boundary.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days in one location.
// Start and End are midnights in that location.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates start and end to midnight in loc.
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	s := Midnight(start, loc)
	e := Midnight(end, loc)
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: end %s before start %s", gerr.ErrInvalidRange, e.Format(DateLayout), s.Format(DateLayout))
	}
	return DateRange{Start: s, End: e}, nil
}

// ParseDateRange parses YYYY-MM-DD dates as calendar days in loc.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q", gerr.ErrInvalidRange, start)
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q", gerr.ErrInvalidRange, end)
	}
	return NewDateRange(s, e, loc)
}

// LastDays returns the range of n+1 days ending on the day of now.
func LastDays(now time.Time, n int, loc *time.Location) DateRange {
	end := Midnight(now, loc)
	return DateRange{Start: end.AddDate(0, 0, -n), End: end}
}

// Midnight returns 00:00 of t's calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DateKey formats t as YYYY-MM-DD in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// In keeps the calendar days of the range and re-anchors them in loc.
func (r DateRange) In(loc *time.Location) DateRange {
	if r.Location() == loc {
		return r
	}
	return DateRange{Start: sameDay(r.Start, loc), End: sameDay(r.End, loc)}
}

func sameDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Location of the range.
func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}

// Days lists every calendar day in the range.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Len is (end - start).days + 1.
func (r DateRange) Len() int {
	return len(r.Days())
}

// Bounds returns the first and last second of the range.
func (r DateRange) Bounds() (time.Time, time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1).Add(-time.Second)
}

// Contains reports whether t falls on one of the range's days.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
