package activity

import (
	"regexp"
	"time"
)

// DateFormat is the wire format for activity dates, e.g. "15/05/2023".
const DateFormat = "02/01/2006"

var dateFormatRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Date is a day-resolution calendar date. Time-of-day and timezone are not
// part of the value; two Dates compare by calendar day only.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to the calendar day in its own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts exactly the dd/MM/yyyy format. Anything else, including
// out-of-range days like 31/02/2023, returns ErrInvalidDate.
func ParseDate(raw string) (Date, error) {
	if !dateFormatRegex.MatchString(raw) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) Before(u Date) bool { return d.t.Before(u.t) }
func (d Date) After(u Date) bool  { return d.t.After(u.t) }
func (d Date) Equal(u Date) bool  { return d.t.Equal(u.t) }

func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to u (negative if u is
// earlier).
func (d Date) DaysUntil(u Date) int {
	return int(u.t.Sub(d.t).Hours() / 24)
}

// String renders the date back in the wire format.
func (d Date) String() string {
	return d.t.Format(DateFormat)
}

// MidnightIn returns the start of the day as an instant in loc.
func (d Date) MidnightIn(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// Interval is an inclusive day-resolution date range. Both boundary days
// belong to the interval. Start <= End always holds for values built through
// NewInterval or ParseInterval.
type Interval struct {
	Start Date
	End   Date
}

// NewInterval rejects ranges whose start falls after their end. Reversed
// input is an error, never silently swapped or clamped.
func NewInterval(start, end Date) (Interval, error) {
	if start.After(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// ParseInterval parses both endpoints from the dd/MM/yyyy wire format.
func ParseInterval(startRaw, endRaw string) (Interval, error) {
	start, err := ParseDate(startRaw)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseDate(endRaw)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, end)
}

// Contains reports whether day falls inside the interval, boundaries
// included.
func (iv Interval) Contains(day Date) bool {
	return !day.Before(iv.Start) && !day.After(iv.End)
}

// Overlaps reports whether the two intervals share at least one day.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.Start.After(other.End) && !other.Start.After(iv.End)
}

// DurationDays counts both boundary days, so a single-day interval has
// duration 1.
func (iv Interval) DurationDays() int {
	return iv.Start.DaysUntil(iv.End) + 1
}

// Compare orders intervals by start date ascending, ties broken by end date
// ascending. Returns -1, 0 or 1.
func (iv Interval) Compare(other Interval) int {
	switch {
	case iv.Start.Before(other.Start):
		return -1
	case iv.Start.After(other.Start):
		return 1
	case iv.End.Before(other.End):
		return -1
	case iv.End.After(other.End):
		return 1
	}
	return 0
}
