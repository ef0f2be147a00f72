package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/editor"
)

type calendarKeyMap struct {
	Left, Right, Up, Down key.Binding
	Select                key.Binding
	Space                 key.Binding
	Today                 key.Binding
	Delete                key.Binding
	Quit                  key.Binding
}

type calendarSpaceKeyMap struct {
	NextMonth, PrevMonth key.Binding
	NextYear, PrevYear   key.Binding
	Cancel               key.Binding
}

type normalKeyMap struct {
	Left, Right, Up, Down                key.Binding
	WordForward, WordBackward, WordEnd   key.Binding
	Goto, Space, Search                  key.Binding
	Insert, Append, OpenBelow, OpenAbove key.Binding
	Select, SelectLine                   key.Binding
	Delete, Change, Yank, Paste, PasteUp key.Binding
	Undo, Redo                           key.Binding
	SearchNext, SearchPrev               key.Binding
	Back                                 key.Binding
}

type gotoKeyMap struct {
	DocumentStart, DocumentEnd key.Binding
	LineStart, LineEnd         key.Binding
	Cancel                     key.Binding
}

type spaceKeyMap struct {
	Save, Quit, ForceQuit, SaveQuit key.Binding
	Cancel                          key.Binding
}

type searchKeyMap struct {
	Confirm, Backspace, Cancel key.Binding
}

type insertKeyMap struct {
	Exit, NewLine, Backspace key.Binding
}

type errorKeyMap struct {
	Dismiss key.Binding
}

var calendarKeys = calendarKeyMap{
	Left:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev day")),
	Right:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next day")),
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev week")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next week")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Space:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
	Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Delete: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var calendarSpaceKeys = calendarSpaceKeyMap{
	NextMonth: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next month")),
	PrevMonth: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev month")),
	NextYear:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "next year")),
	PrevYear:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "prev year")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
}

var normalKeys = normalKeyMap{
	Left:         key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
	Right:        key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),
	Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	WordForward:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "word")),
	WordBackward: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back word")),
	WordEnd:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "word end")),
	Goto:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goto")),
	Space:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "commands")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Insert:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
	Append:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
	OpenBelow:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open below")),
	OpenAbove:    key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open above")),
	Select:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
	SelectLine:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "select line")),
	Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Change:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "change")),
	Yank:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
	Paste:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
	PasteUp:      key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "paste before")),
	Undo:         key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Redo:         key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "redo")),
	SearchNext:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	SearchPrev:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "prev match")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "calendar")),
}

var gotoKeys = gotoKeyMap{
	DocumentStart: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	DocumentEnd:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "bottom")),
	LineStart:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "line start")),
	LineEnd:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "line end")),
	Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

var spaceKeys = spaceKeyMap{
	Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "quit without saving")),
	SaveQuit:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "save and quit")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

var searchKeys = searchKeyMap{
	Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

var insertKeys = insertKeyMap{
	Exit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),
	NewLine:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
}

var errorKeys = errorKeyMap{
	Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
}

// HelpKeys returns the bindings active in the model's current context, for
// the help footer.
func (m *Model) HelpKeys() []key.Binding {
	if m.ShowError {
		return []key.Binding{errorKeys.Dismiss}
	}
	if m.Screen == ScreenCalendar {
		if m.ConfirmDelete {
			return []key.Binding{
				key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm delete")),
				key.NewBinding(key.WithKeys("n"), key.WithHelp("any", "cancel")),
			}
		}
		if m.Calendar.Submode == calendar.Space {
			k := calendarSpaceKeys
			return []key.Binding{k.NextMonth, k.PrevMonth, k.NextYear, k.PrevYear, k.Cancel}
		}
		k := calendarKeys
		return []key.Binding{k.Left, k.Down, k.Up, k.Right, k.Select, k.Space, k.Today, k.Delete, k.Quit}
	}
	return m.editorHelpKeys()
}

func (m *Model) editorHelpKeys() []key.Binding {
	if m.Editor.Mode == editor.Insert {
		return []key.Binding{insertKeys.Exit, insertKeys.NewLine, insertKeys.Backspace}
	}
	switch m.Editor.Submode {
	case editor.Goto:
		k := gotoKeys
		return []key.Binding{k.DocumentStart, k.DocumentEnd, k.LineStart, k.LineEnd, k.Cancel}
	case editor.SpaceCommand:
		k := spaceKeys
		return []key.Binding{k.Save, k.Quit, k.ForceQuit, k.SaveQuit, k.Cancel}
	case editor.Search:
		return []key.Binding{searchKeys.Confirm, searchKeys.Backspace, searchKeys.Cancel}
	}
	k := normalKeys
	return []key.Binding{k.Insert, k.Select, k.SelectLine, k.Delete, k.Yank, k.Paste, k.Undo, k.Goto, k.Space, k.Search, k.Back}
}
