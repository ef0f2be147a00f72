package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/caldiary/internal/day"
	"github.com/chris-regnier/caldiary/internal/editor"
)

// Msg is anything Update understands. App messages are plain bubbletea
// messages so the terminal program can route them unchanged; values Update
// does not recognise are ignored.
type Msg = tea.Msg

// Direction is a one-step cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Motion is an editor cursor motion.
type Motion int

const (
	MotionWordForward Motion = iota
	MotionWordBackward
	MotionWordEnd
	MotionDocumentStart
	MotionDocumentEnd
	MotionLineStart
	MotionLineEnd
)

// Calendar messages.
type (
	CalendarMove      struct{ Dir Direction }
	CalendarNextMonth struct{}
	CalendarPrevMonth struct{}
	CalendarNextYear  struct{}
	CalendarPrevYear  struct{}
	CalendarSpace     struct{}
	CalendarExitSpace struct{}
	CalendarToday     struct{}
	// SelectDate opens the editor on the selected calendar date.
	SelectDate    struct{}
	RequestDelete struct{}
	ConfirmDelete struct{}
	CancelDelete  struct{}
	Quit          struct{}
)

// Editor messages.
type (
	EditorMove   struct{ Dir Direction }
	EditorMotion struct{ Motion Motion }
	// EditorGoto applies a motion from the Goto submode and leaves it.
	EditorGoto         struct{ Motion Motion }
	EditorEnterSubmode struct{ Submode editor.Submode }
	EditorExitSubmode  struct{}
	EditorEnterInsert  struct{ At editor.Placement }
	EditorExitInsert   struct{}
	EditorInsertChar   struct{ Char rune }
	// EditorInsertText inserts several runes delivered by one key event,
	// as terminals do for bracketed paste.
	EditorInsertText      struct{ Text string }
	EditorBackspace       struct{}
	EditorNewLine         struct{}
	EditorToggleSelection struct{}
	EditorSelectLine      struct{}
	EditorDelete          struct{}
	EditorChange          struct{}
	EditorYank            struct{}
	EditorPaste           struct{ Before bool }
	EditorUndo            struct{}
	EditorRedo            struct{}
	EditorSearchInput     struct{ Char rune }
	EditorSearchBackspace struct{}
	EditorSearchConfirm   struct{}
	EditorSearchNext      struct{}
	EditorSearchPrev      struct{}
	EditorSave            struct{}
	EditorQuit            struct{}
	EditorForceQuit       struct{}
	EditorSaveQuit        struct{}
	// EditorBack returns to the calendar, saving pending changes.
	EditorBack struct{}
)

// DismissError closes the error popup.
type DismissError struct{}

// Command results.
type (
	LoadDiarySuccess struct {
		Date    day.Date
		Content string
	}
	LoadDiaryFailed struct {
		Date day.Date
		Err  error
		// NotFound is set when the date simply has no entry yet.
		NotFound bool
	}
	SaveDiarySuccess struct {
		Date    day.Date
		Content string
	}
	SaveDiaryFailed struct {
		Date day.Date
		Err  error
	}
	DeleteDiarySuccess struct{ Date day.Date }
	DeleteDiaryFailed  struct {
		Date day.Date
		Err  error
	}
)
