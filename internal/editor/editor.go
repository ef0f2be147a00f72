// Package editor implements the modal text editor used for a single diary
// entry: Normal and Insert modes, the Goto, Space and Search submodes,
// selections, a clipboard, incremental search and snapshot-based undo.
//
// State is plain data mutated through methods; it performs no I/O.
package editor

import (
	"github.com/chris-regnier/caldiary/internal/buffer"
	"github.com/chris-regnier/caldiary/internal/day"
)

// Mode is the primary editing mode.
type Mode int

const (
	Normal Mode = iota
	Insert
)

func (m Mode) String() string {
	if m == Insert {
		return "INSERT"
	}
	return "NORMAL"
}

// Submode narrows key interpretation inside Normal mode.
type Submode int

const (
	NoSubmode Submode = iota
	Goto
	SpaceCommand
	Search
)

func (s Submode) String() string {
	switch s {
	case Goto:
		return "GOTO"
	case SpaceCommand:
		return "SPACE"
	case Search:
		return "SEARCH"
	}
	return ""
}

// Placement picks where Insert mode starts.
type Placement int

const (
	BeforeCursor Placement = iota
	AfterCursor
	LineBelow
	LineAbove
)

// State is the complete editor state for one document.
type State struct {
	Mode    Mode
	Submode Submode
	Date    day.Date

	Content    buffer.Lines
	CursorLine int
	CursorCol  int
	Modified   bool
	Selection  *buffer.Selection

	History      []Snapshot
	HistoryIndex int
	// cleanIndex is the history index matching what is on disk, -1 if none.
	cleanIndex int

	Clipboard string

	SearchPattern string
	SearchMatches []buffer.Pos
	SearchIndex   int
	searchOrigin  buffer.Pos
}

// New returns an editor holding the empty document for date.
func New(date day.Date) State {
	s := State{Date: date}
	s.LoadContent("")
	return s
}

// Open switches the editor to date with an empty document. The clipboard
// survives; everything else is reset.
func (s *State) Open(date day.Date) {
	clip := s.Clipboard
	*s = New(date)
	s.Clipboard = clip
}

// LoadContent replaces the whole document, resets the cursor and starts a
// fresh undo history whose only snapshot is the loaded text.
func (s *State) LoadContent(text string) {
	s.Content = buffer.Split(text)
	s.CursorLine, s.CursorCol = 0, 0
	s.Modified = false
	s.Selection = nil
	s.Mode = Normal
	s.Submode = NoSubmode
	s.clearSearch()

	s.History = []Snapshot{s.snapshot()}
	s.HistoryIndex = 0
	s.cleanIndex = 0
}

// GetContent serializes the document.
func (s *State) GetContent() string {
	return s.Content.Join()
}

// Cursor returns the cursor position.
func (s *State) Cursor() buffer.Pos {
	return buffer.Pos{Line: s.CursorLine, Col: s.CursorCol}
}

func (s *State) setCursor(p buffer.Pos) {
	p = s.Content.Clamp(p)
	s.CursorLine, s.CursorCol = p.Line, p.Col
	if s.Selection != nil {
		s.Selection.Cursor = p
	}
}

// EnterSubmode activates a Normal-mode submode.
func (s *State) EnterSubmode(sub Submode) {
	if s.Mode != Normal {
		return
	}
	if sub == Search {
		s.startSearch()
		return
	}
	s.Submode = sub
}

// ExitSubmode cancels the active submode. Cancelling Search drops the
// pattern and returns the cursor to where the search started.
func (s *State) ExitSubmode() {
	if s.Submode == Search {
		s.cancelSearch()
		return
	}
	s.Submode = NoSubmode
}

// MarkSaved records that content reached storage. It returns true and
// clears Modified when the document still holds exactly that content.
func (s *State) MarkSaved(content string) bool {
	if s.GetContent() != content {
		return false
	}
	s.Modified = false
	s.cleanIndex = s.HistoryIndex
	return true
}

// touch marks the document changed after a buffer mutation.
func (s *State) touch() {
	s.Modified = true
	s.refreshSearch()
}
