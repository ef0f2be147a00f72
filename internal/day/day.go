// Package day provides the Date value used to key diary entries.
// A Date is a plain calendar day with no time of day and no time zone,
// which makes it safe to use as a map key and to compare with ==.
package day

import (
	"fmt"
	"time"
)

// Layout is the canonical textual form of a Date.
const Layout = "2006-01-02"

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var (
	// MinDate is the earliest date the calendar can reach.
	MinDate = Date{Year: 1, Month: time.January, Day: 1}
	// MaxDate is the latest date the calendar can reach.
	MaxDate = Date{Year: 9999, Month: time.December, Day: 31}
)

// New builds a Date without normalization. Use Valid to check it.
func New(year int, month time.Month, d int) Date {
	return Date{Year: year, Month: month, Day: d}
}

// Of returns the calendar day of t in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day.
func Today() Date {
	return Of(time.Now())
}

// Parse reads a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return Of(t), nil
}

// Time returns local midnight of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real day inside [MinDate, MaxDate].
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	if d.Day < 1 || d.Day > DaysIn(d.Year, d.Month) {
		return false
	}
	return d.Compare(MinDate) >= 0 && d.Compare(MaxDate) <= 0
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays shifts d by n days. The second result is false when the shifted
// date would leave [MinDate, MaxDate]; d is then returned unchanged.
func (d Date) AddDays(n int) (Date, bool) {
	// Noon avoids DST edges turning a day shift into 23 or 25 hours.
	t := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	next := Of(t)
	if next.Before(MinDate) || next.After(MaxDate) {
		return d, false
	}
	return next, true
}

// Clamp pins the day of d into the valid range of its month.
func (d Date) Clamp() Date {
	last := DaysIn(d.Year, d.Month)
	if d.Day > last {
		d.Day = last
	}
	if d.Day < 1 {
		d.Day = 1
	}
	return d
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
