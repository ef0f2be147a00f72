// Package calendar implements the month view navigation state.
//
// Every operation is a pure function from State to State. The selected date
// always lies inside the displayed month; month and year jumps clamp the
// day to the length of the target month.
package calendar

import (
	"time"

	"github.com/chris-regnier/caldiary/internal/day"
)

// Submode narrows key interpretation on the calendar screen.
type Submode int

const (
	NoSubmode Submode = iota
	// Space is the coarse month/year jump mode.
	Space
)

// State is the calendar navigation state.
type State struct {
	CurrentYear  int
	CurrentMonth time.Month
	SelectedDate day.Date
	// CursorPos is reserved for grid-relative cursor tracking and unused.
	CursorPos int
	Submode   Submode
}

// New returns a calendar showing the month of selected.
func New(selected day.Date) State {
	return State{
		CurrentYear:  selected.Year,
		CurrentMonth: selected.Month,
		SelectedDate: selected,
	}
}

// NextMonth shows the following month, rolling into the next year after
// December.
func NextMonth(s State) State {
	year, month := s.CurrentYear, s.CurrentMonth+1
	if month > time.December {
		year, month = year+1, time.January
	}
	return show(s, year, month)
}

// PrevMonth shows the preceding month, rolling into the previous year
// before January.
func PrevMonth(s State) State {
	year, month := s.CurrentYear, s.CurrentMonth-1
	if month < time.January {
		year, month = year-1, time.December
	}
	return show(s, year, month)
}

// NextYear shows the same month one year later.
func NextYear(s State) State {
	return show(s, s.CurrentYear+1, s.CurrentMonth)
}

// PrevYear shows the same month one year earlier.
func PrevYear(s State) State {
	return show(s, s.CurrentYear-1, s.CurrentMonth)
}

// MoveLeft selects the previous day.
func MoveLeft(s State) State { return moveDays(s, -1) }

// MoveRight selects the next day.
func MoveRight(s State) State { return moveDays(s, 1) }

// MoveUp selects the same weekday one week earlier.
func MoveUp(s State) State { return moveDays(s, -7) }

// MoveDown selects the same weekday one week later.
func MoveDown(s State) State { return moveDays(s, 7) }

// Select jumps straight to date, showing its month. Invalid dates are
// ignored.
func Select(s State, date day.Date) State {
	if !date.Valid() {
		return s
	}
	s.SelectedDate = date
	s.CurrentYear, s.CurrentMonth = date.Year, date.Month
	return s
}

// EnterSpace activates the coarse navigation submode.
func EnterSpace(s State) State {
	s.Submode = Space
	return s
}

// ExitSubmode returns to plain navigation.
func ExitSubmode(s State) State {
	s.Submode = NoSubmode
	return s
}

// show switches the displayed month and clamps the selected day into it.
// Months outside the supported date range leave s unchanged.
func show(s State, year int, month time.Month) State {
	target := day.New(year, month, s.SelectedDate.Day).Clamp()
	if !target.Valid() {
		return s
	}
	s.CurrentYear, s.CurrentMonth = year, month
	s.SelectedDate = target
	return s
}

// moveDays saturates at the supported date range.
func moveDays(s State, n int) State {
	next, ok := s.SelectedDate.AddDays(n)
	if !ok {
		return s
	}
	return Select(s, next)
}
