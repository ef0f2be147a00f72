package app

import (
	"fmt"

	"github.com/chris-regnier/caldiary/internal/calendar"
	"github.com/chris-regnier/caldiary/internal/editor"
)

const unsavedQuitMsg = "unsaved changes: space x saves and quits, space Q quits without saving"

// Update applies msg to m and returns the side effect to run next, or nil.
// Unknown messages leave m unchanged.
func Update(m *Model, msg Msg) Command {
	switch msg := msg.(type) {
	case DismissError:
		m.Err = ""
		m.ShowError = false

	// Calendar.
	case CalendarMove:
		switch msg.Dir {
		case Left:
			m.Calendar = calendar.MoveLeft(m.Calendar)
		case Right:
			m.Calendar = calendar.MoveRight(m.Calendar)
		case Up:
			m.Calendar = calendar.MoveUp(m.Calendar)
		case Down:
			m.Calendar = calendar.MoveDown(m.Calendar)
		}
	case CalendarNextMonth:
		m.Calendar = calendar.NextMonth(m.Calendar)
	case CalendarPrevMonth:
		m.Calendar = calendar.PrevMonth(m.Calendar)
	case CalendarNextYear:
		m.Calendar = calendar.NextYear(m.Calendar)
	case CalendarPrevYear:
		m.Calendar = calendar.PrevYear(m.Calendar)
	case CalendarSpace:
		m.Calendar = calendar.EnterSpace(m.Calendar)
	case CalendarExitSpace:
		m.Calendar = calendar.ExitSubmode(m.Calendar)
	case CalendarToday:
		m.Calendar = calendar.Select(m.Calendar, m.Today())
	case SelectDate:
		date := m.Calendar.SelectedDate
		m.Screen = ScreenEditor
		if date == m.Editor.Date && m.Editor.Modified {
			// Unsaved work from a failed save is still here.
			return nil
		}
		m.Editor.Open(date)
		return LoadDiary{Date: date}
	case RequestDelete:
		if m.Index.Has(m.Calendar.SelectedDate) {
			m.ConfirmDelete = true
		}
	case ConfirmDelete:
		m.ConfirmDelete = false
		return DeleteDiary{Date: m.Calendar.SelectedDate}
	case CancelDelete:
		m.ConfirmDelete = false
	case Quit:
		if m.Editor.Modified {
			m.raise(fmt.Sprintf("unsaved changes in %s: open it and press space w to save, or space Q to discard", m.Editor.Date))
			break
		}
		m.Quitting = true

	// Command results.
	case LoadDiarySuccess:
		if msg.Date == m.Editor.Date {
			m.Editor.LoadContent(msg.Content)
		}
	case LoadDiaryFailed:
		if msg.Date != m.Editor.Date {
			break
		}
		m.Editor.LoadContent("")
		if !msg.NotFound {
			m.raise(fmt.Sprintf("loading %s: %v", msg.Date, msg.Err))
		}
	case SaveDiarySuccess:
		m.Index.Add(msg.Date)
		if msg.Date == m.Editor.Date {
			m.Editor.MarkSaved(msg.Content)
		}
		m.finishPendingQuit()
	case SaveDiaryFailed:
		m.quitAfterSave = false
		m.raise(fmt.Sprintf("saving %s: %v", msg.Date, msg.Err))
	case DeleteDiarySuccess:
		m.Index.Remove(msg.Date)
		if msg.Date == m.Editor.Date && m.Editor.Content.IsBlank() {
			m.Editor.MarkSaved(m.Editor.GetContent())
		}
		m.finishPendingQuit()
	case DeleteDiaryFailed:
		m.quitAfterSave = false
		m.raise(fmt.Sprintf("deleting %s: %v", msg.Date, msg.Err))

	default:
		return updateEditor(m, msg)
	}
	return nil
}

func updateEditor(m *Model, msg Msg) Command {
	e := &m.Editor
	switch msg := msg.(type) {
	case EditorMove:
		switch msg.Dir {
		case Left:
			e.MoveLeft()
		case Right:
			e.MoveRight()
		case Up:
			e.MoveUp()
		case Down:
			e.MoveDown()
		}
	case EditorMotion:
		applyMotion(e, msg.Motion)
	case EditorGoto:
		applyMotion(e, msg.Motion)
		e.ExitSubmode()
	case EditorEnterSubmode:
		e.EnterSubmode(msg.Submode)
	case EditorExitSubmode:
		e.ExitSubmode()
	case EditorEnterInsert:
		e.EnterInsert(msg.At)
	case EditorExitInsert:
		e.ExitInsert()
	case EditorInsertChar:
		if e.Mode == editor.Insert {
			e.InsertChar(msg.Char)
		}
	case EditorInsertText:
		if e.Mode == editor.Insert {
			for _, r := range msg.Text {
				e.InsertChar(r)
			}
		}
	case EditorBackspace:
		if e.Mode == editor.Insert {
			e.Backspace()
		}
	case EditorNewLine:
		if e.Mode == editor.Insert {
			e.NewLine()
		}
	case EditorToggleSelection:
		e.ToggleSelection()
	case EditorSelectLine:
		e.SelectLine()
	case EditorDelete:
		return m.mirror(e.Delete())
	case EditorChange:
		return m.mirror(e.Change())
	case EditorYank:
		return m.mirror(e.Yank())
	case EditorPaste:
		if msg.Before {
			e.PasteBefore()
		} else {
			e.PasteAfter()
		}
	case EditorUndo:
		e.Undo()
	case EditorRedo:
		e.Redo()
	case EditorSearchInput:
		e.SearchInput(msg.Char)
	case EditorSearchBackspace:
		e.SearchBackspace()
	case EditorSearchConfirm:
		e.SearchConfirm()
	case EditorSearchNext:
		e.SearchNext()
	case EditorSearchPrev:
		e.SearchPrev()
	case EditorSave:
		e.ExitSubmode()
		return m.save()
	case EditorSaveQuit:
		e.ExitSubmode()
		cmd := m.save()
		if cmd == nil {
			m.Quitting = true
		} else {
			m.quitAfterSave = true
		}
		return cmd
	case EditorQuit:
		e.ExitSubmode()
		if e.Modified {
			m.raise(unsavedQuitMsg)
			break
		}
		m.Quitting = true
	case EditorForceQuit:
		e.ExitSubmode()
		m.Quitting = true
	case EditorBack:
		var cmd Command
		if e.Modified {
			cmd = m.save()
		}
		e.Selection = nil
		m.Screen = ScreenCalendar
		return cmd
	}
	return nil
}

func applyMotion(e *editor.State, motion Motion) {
	switch motion {
	case MotionWordForward:
		e.WordForward()
	case MotionWordBackward:
		e.WordBackward()
	case MotionWordEnd:
		e.WordEnd()
	case MotionDocumentStart:
		e.GotoDocumentStart()
	case MotionDocumentEnd:
		e.GotoDocumentEnd()
	case MotionLineStart:
		e.GotoLineStart()
	case MotionLineEnd:
		e.GotoLineEnd()
	}
}

// save persists the editor document. A blank document deletes an existing
// entry rather than storing an empty file, and is a no-op otherwise.
func (m *Model) save() Command {
	date := m.Editor.Date
	if m.Editor.Content.IsBlank() {
		if m.Index.Has(date) {
			return DeleteDiary{Date: date}
		}
		m.Editor.MarkSaved(m.Editor.GetContent())
		return nil
	}
	return SaveDiary{Date: date, Content: m.Editor.GetContent()}
}

// mirror copies text to the system clipboard when that is enabled.
func (m *Model) mirror(text string) Command {
	if !m.opts.SystemClipboard || text == "" {
		return nil
	}
	return CopyToClipboard{Text: text}
}

func (m *Model) finishPendingQuit() {
	if m.quitAfterSave {
		m.quitAfterSave = false
		m.Quitting = true
	}
}
