package calendar

import (
	"time"

	"github.com/chris-regnier/caldiary/internal/day"
)

// Grid returns the displayed month as weeks of seven cells. Cells outside
// the month hold the zero Date. weekStart selects the first column.
func Grid(year int, month time.Month, weekStart time.Weekday) [][7]day.Date {
	first := day.New(year, month, 1)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7

	var weeks [][7]day.Date
	var week [7]day.Date
	col := offset
	for d := 1; d <= day.DaysIn(year, month); d++ {
		week[col] = day.New(year, month, d)
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]day.Date{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekdayHeaders returns two-letter weekday names starting at weekStart.
func WeekdayHeaders(weekStart time.Weekday) [7]string {
	var h [7]string
	for i := range h {
		h[i] = time.Weekday((int(weekStart) + i) % 7).String()[:2]
	}
	return h
}
