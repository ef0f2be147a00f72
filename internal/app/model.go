// Package app wires the calendar and the editor into one model and defines
// the closed loop that drives them: key events are interpreted into
// messages, Update applies a message and may return a Command, and the
// Executor runs the Command against storage and yields the next message.
package app

import (
	"time"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/editor"
)

// Screen is the active top-level view.
type Screen int

const (
	ScreenCalendar Screen = iota
	ScreenEditor
)

// Options tune model behaviour from configuration.
type Options struct {
	// SystemClipboard mirrors yanked and deleted text to the OS clipboard.
	SystemClipboard bool
	// WeekStart is the first column of the month grid.
	WeekStart time.Weekday
	// Today returns the current date; nil means day.Today.
	Today func() day.Date
}

func (o Options) today() day.Date {
	if o.Today != nil {
		return o.Today()
	}
	return day.Today()
}

// Model is the root state of an editing session. Only Update mutates it.
type Model struct {
	Screen   Screen
	Calendar calendar.State
	Editor   editor.State
	Index    DiaryIndex

	Err       string
	ShowError bool
	// ConfirmDelete is set while the calendar asks to confirm a deletion.
	ConfirmDelete bool
	// Quitting tells the outer loop to stop.
	Quitting bool

	quitAfterSave bool
	opts          Options
}

// NewModel creates the model on the calendar screen, with today selected
// and entries marking the dates that already have a saved entry.
func NewModel(entries []day.Date, opts Options) *Model {
	today := opts.today()
	return &Model{
		Screen:   ScreenCalendar,
		Calendar: calendar.New(today),
		Editor:   editor.New(today),
		Index:    NewDiaryIndex(entries),
		opts:     opts,
	}
}

// Options returns the options the model was created with.
func (m *Model) Options() Options {
	return m.opts
}

// Today returns the current date as seen by the model.
func (m *Model) Today() day.Date {
	return m.opts.today()
}

func (m *Model) raise(msg string) {
	m.Err = msg
	m.ShowError = true
}
