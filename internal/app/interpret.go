package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/editor"
)

// Interpret maps a key event to a message for the model's current context.
// It never mutates m. Keys with no meaning in the context yield nil.
//
// Precedence: the error popup, then the active screen, then within the
// editor the mode and finally the Normal-mode submode.
func Interpret(m *Model, k tea.KeyMsg) Msg {
	if m.ShowError {
		if key.Matches(k, errorKeys.Dismiss) {
			return DismissError{}
		}
		return nil
	}
	if m.Screen == ScreenCalendar {
		return interpretCalendar(m, k)
	}
	if m.Editor.Mode == editor.Insert {
		return interpretInsert(k)
	}
	switch m.Editor.Submode {
	case editor.Goto:
		return interpretGoto(k)
	case editor.SpaceCommand:
		return interpretSpace(k)
	case editor.Search:
		return interpretSearch(k)
	}
	return interpretNormal(k)
}

func interpretCalendar(m *Model, k tea.KeyMsg) Msg {
	if m.ConfirmDelete {
		if k.String() == "y" {
			return ConfirmDelete{}
		}
		return CancelDelete{}
	}

	if m.Calendar.Submode == calendar.Space {
		ks := calendarSpaceKeys
		switch {
		case key.Matches(k, ks.NextMonth):
			return CalendarNextMonth{}
		case key.Matches(k, ks.PrevMonth):
			return CalendarPrevMonth{}
		case key.Matches(k, ks.NextYear):
			return CalendarNextYear{}
		case key.Matches(k, ks.PrevYear):
			return CalendarPrevYear{}
		case key.Matches(k, ks.Cancel):
			return CalendarExitSpace{}
		}
		return nil
	}

	ks := calendarKeys
	switch {
	case key.Matches(k, ks.Left):
		return CalendarMove{Dir: Left}
	case key.Matches(k, ks.Right):
		return CalendarMove{Dir: Right}
	case key.Matches(k, ks.Up):
		return CalendarMove{Dir: Up}
	case key.Matches(k, ks.Down):
		return CalendarMove{Dir: Down}
	case key.Matches(k, ks.Select):
		return SelectDate{}
	case key.Matches(k, ks.Space):
		return CalendarSpace{}
	case key.Matches(k, ks.Today):
		return CalendarToday{}
	case key.Matches(k, ks.Delete):
		return RequestDelete{}
	case key.Matches(k, ks.Quit):
		return Quit{}
	}
	return nil
}

func interpretNormal(k tea.KeyMsg) Msg {
	ks := normalKeys
	switch {
	case key.Matches(k, ks.Left):
		return EditorMove{Dir: Left}
	case key.Matches(k, ks.Right):
		return EditorMove{Dir: Right}
	case key.Matches(k, ks.Up):
		return EditorMove{Dir: Up}
	case key.Matches(k, ks.Down):
		return EditorMove{Dir: Down}
	case key.Matches(k, ks.WordForward):
		return EditorMotion{Motion: MotionWordForward}
	case key.Matches(k, ks.WordBackward):
		return EditorMotion{Motion: MotionWordBackward}
	case key.Matches(k, ks.WordEnd):
		return EditorMotion{Motion: MotionWordEnd}
	case key.Matches(k, ks.Goto):
		return EditorEnterSubmode{Submode: editor.Goto}
	case key.Matches(k, ks.Space):
		return EditorEnterSubmode{Submode: editor.SpaceCommand}
	case key.Matches(k, ks.Search):
		return EditorEnterSubmode{Submode: editor.Search}
	case key.Matches(k, ks.Insert):
		return EditorEnterInsert{At: editor.BeforeCursor}
	case key.Matches(k, ks.Append):
		return EditorEnterInsert{At: editor.AfterCursor}
	case key.Matches(k, ks.OpenBelow):
		return EditorEnterInsert{At: editor.LineBelow}
	case key.Matches(k, ks.OpenAbove):
		return EditorEnterInsert{At: editor.LineAbove}
	case key.Matches(k, ks.Select):
		return EditorToggleSelection{}
	case key.Matches(k, ks.SelectLine):
		return EditorSelectLine{}
	case key.Matches(k, ks.Delete):
		return EditorDelete{}
	case key.Matches(k, ks.Change):
		return EditorChange{}
	case key.Matches(k, ks.Yank):
		return EditorYank{}
	case key.Matches(k, ks.Paste):
		return EditorPaste{}
	case key.Matches(k, ks.PasteUp):
		return EditorPaste{Before: true}
	case key.Matches(k, ks.Undo):
		return EditorUndo{}
	case key.Matches(k, ks.Redo):
		return EditorRedo{}
	case key.Matches(k, ks.SearchNext):
		return EditorSearchNext{}
	case key.Matches(k, ks.SearchPrev):
		return EditorSearchPrev{}
	case key.Matches(k, ks.Back):
		return EditorBack{}
	}
	return nil
}

func interpretGoto(k tea.KeyMsg) Msg {
	ks := gotoKeys
	switch {
	case key.Matches(k, ks.DocumentStart):
		return EditorGoto{Motion: MotionDocumentStart}
	case key.Matches(k, ks.DocumentEnd):
		return EditorGoto{Motion: MotionDocumentEnd}
	case key.Matches(k, ks.LineStart):
		return EditorGoto{Motion: MotionLineStart}
	case key.Matches(k, ks.LineEnd):
		return EditorGoto{Motion: MotionLineEnd}
	case key.Matches(k, ks.Cancel):
		return EditorExitSubmode{}
	}
	return nil
}

func interpretSpace(k tea.KeyMsg) Msg {
	ks := spaceKeys
	switch {
	case key.Matches(k, ks.Save):
		return EditorSave{}
	case key.Matches(k, ks.Quit):
		return EditorQuit{}
	case key.Matches(k, ks.ForceQuit):
		return EditorForceQuit{}
	case key.Matches(k, ks.SaveQuit):
		return EditorSaveQuit{}
	case key.Matches(k, ks.Cancel):
		return EditorExitSubmode{}
	}
	return nil
}

func interpretSearch(k tea.KeyMsg) Msg {
	switch {
	case key.Matches(k, searchKeys.Confirm):
		return EditorSearchConfirm{}
	case key.Matches(k, searchKeys.Backspace):
		return EditorSearchBackspace{}
	case key.Matches(k, searchKeys.Cancel):
		return EditorExitSubmode{}
	}
	if r, ok := typedRune(k); ok {
		return EditorSearchInput{Char: r}
	}
	return nil
}

func interpretInsert(k tea.KeyMsg) Msg {
	switch {
	case key.Matches(k, insertKeys.Exit):
		return EditorExitInsert{}
	case key.Matches(k, insertKeys.NewLine):
		return EditorNewLine{}
	case key.Matches(k, insertKeys.Backspace):
		return EditorBackspace{}
	}
	if k.Type == tea.KeyRunes && len(k.Runes) > 1 {
		return EditorInsertText{Text: string(k.Runes)}
	}
	if r, ok := typedRune(k); ok {
		return EditorInsertChar{Char: r}
	}
	return nil
}

// typedRune extracts the single printable character a key event carries.
func typedRune(k tea.KeyMsg) (rune, bool) {
	switch k.Type {
	case tea.KeySpace:
		return ' ', true
	case tea.KeyTab:
		return '\t', true
	case tea.KeyRunes:
		if len(k.Runes) == 1 && !k.Alt {
			return k.Runes[0], true
		}
	}
	return 0, false
}
