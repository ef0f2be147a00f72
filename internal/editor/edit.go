package editor

import (
	"strings"

	"github.com/chris-regnier/caldiary/internal/buffer"
)

// InsertChar inserts r at the cursor and advances past it.
func (s *State) InsertChar(r rune) {
	var p buffer.Pos
	s.Content, p = s.Content.InsertRune(s.Cursor(), r)
	s.CursorLine, s.CursorCol = p.Line, p.Col
	s.touch()
}

// Backspace deletes the character before the cursor, joining lines at
// column 0.
func (s *State) Backspace() {
	p := s.Cursor()
	if p.Line == 0 && p.Col == 0 {
		return
	}
	s.Content, p = s.Content.Backspace(p)
	s.CursorLine, s.CursorCol = p.Line, p.Col
	s.touch()
}

// NewLine splits the line at the cursor and moves to the new line.
func (s *State) NewLine() {
	var p buffer.Pos
	s.Content, p = s.Content.SplitLine(s.Cursor())
	s.CursorLine, s.CursorCol = p.Line, p.Col
	s.touch()
}

// EnterInsert switches to Insert mode at the given placement. Opening a
// line above or below edits the buffer immediately.
func (s *State) EnterInsert(at Placement) {
	s.Selection = nil
	s.Submode = NoSubmode
	s.Mode = Insert

	switch at {
	case AfterCursor:
		s.setCursor(buffer.Pos{Line: s.CursorLine, Col: s.CursorCol + 1})
	case LineBelow:
		s.Content = s.Content.InsertLines(s.CursorLine+1, []string{""})
		s.CursorLine, s.CursorCol = s.CursorLine+1, 0
		s.touch()
	case LineAbove:
		s.Content = s.Content.InsertLines(s.CursorLine, []string{""})
		s.CursorCol = 0
		s.touch()
	}
}

// ExitInsert returns to Normal mode. Everything typed since Insert mode
// began becomes a single undo step.
func (s *State) ExitInsert() {
	if s.Mode != Insert {
		return
	}
	s.Mode = Normal
	s.commit()
}

// ToggleSelection starts a selection at the cursor or drops the active one.
func (s *State) ToggleSelection() {
	if s.Selection != nil {
		s.Selection = nil
		return
	}
	p := s.Cursor()
	s.Selection = &buffer.Selection{Anchor: p, Cursor: p}
}

// SelectLine selects the cursor line. When whole lines are already
// selected the selection grows by one line downwards.
func (s *State) SelectLine() {
	if s.Selection != nil && s.Selection.Linewise {
		r := buffer.Normalize(*s.Selection)
		end := min(r.End.Line+1, len(s.Content)-1)
		s.Selection.Anchor = buffer.Pos{Line: r.Start.Line}
		s.setCursor(buffer.Pos{Line: end, Col: s.Content.LineLen(end)})
		return
	}
	line := s.CursorLine
	s.Selection = &buffer.Selection{
		Anchor:   buffer.Pos{Line: line},
		Linewise: true,
	}
	s.setCursor(buffer.Pos{Line: line, Col: s.Content.LineLen(line)})
}

// SelectionRange returns the normalized selection, if any.
func (s *State) SelectionRange() (buffer.Range, bool) {
	if s.Selection == nil {
		return buffer.Range{}, false
	}
	r := buffer.Normalize(*s.Selection)
	if r.Linewise {
		r.Start.Col = 0
		r.End.Col = s.Content.LineLen(r.End.Line)
	}
	return r, true
}

// SelectedText returns the text under the selection. It reports false when
// nothing is selected or the selection ends outside the document.
func (s *State) SelectedText() (string, bool) {
	r, ok := s.SelectionRange()
	if !ok {
		return "", false
	}
	return s.Content.Text(r)
}

// Delete removes the selection, or the character under the cursor, and
// puts the removed text in the clipboard. It returns the removed text.
func (s *State) Delete() string {
	removed := s.cut()
	if removed != "" {
		s.commit()
	}
	return removed
}

// Change deletes like Delete and then enters Insert mode. A linewise change
// leaves one empty line in place of the removed lines.
func (s *State) Change() string {
	sel, hasSel := s.SelectionRange()
	wholeDocument := sel.Start.Line == 0 && sel.End.Line >= len(s.Content)-1
	removed := s.cut()
	if hasSel && sel.Linewise && removed != "" && !wholeDocument {
		s.Content = s.Content.InsertLines(sel.Start.Line, []string{""})
		s.CursorLine, s.CursorCol = sel.Start.Line, 0
	}
	s.Submode = NoSubmode
	s.Mode = Insert
	return removed
}

func (s *State) cut() string {
	var r buffer.Range
	if sel, ok := s.SelectionRange(); ok && (sel.Linewise || sel.Start != sel.End) {
		r = sel
	} else {
		next, ok := s.Content.Next(s.Cursor())
		if !ok {
			return ""
		}
		r = buffer.Range{Start: s.Cursor(), End: next}
	}

	var removed string
	s.Content, removed = s.Content.Delete(r)
	s.Selection = nil
	if removed == "" {
		return ""
	}

	at := r.Start
	if r.Linewise {
		at = buffer.Pos{Line: min(r.Start.Line, len(s.Content)-1)}
	}
	s.setCursor(at)
	s.Clipboard = removed
	s.touch()
	return removed
}

// Yank copies the selection, or the cursor line, into the clipboard and
// returns the copied text. Linewise text ends with a line break.
func (s *State) Yank() string {
	var text string
	if sel, ok := s.SelectionRange(); ok {
		text, _ = s.Content.Text(sel)
		if sel.Linewise {
			text += "\n"
		}
	} else {
		text = s.Content[s.CursorLine] + "\n"
	}
	s.Selection = nil
	s.Clipboard = text
	return text
}

// PasteAfter inserts the clipboard after the cursor, or below the cursor
// line for linewise text.
func (s *State) PasteAfter() {
	s.paste(true)
}

// PasteBefore inserts the clipboard before the cursor, or above the cursor
// line for linewise text.
func (s *State) PasteBefore() {
	s.paste(false)
}

func (s *State) paste(after bool) {
	if s.Clipboard == "" {
		return
	}
	s.Selection = nil

	if strings.HasSuffix(s.Clipboard, "\n") {
		lines := strings.Split(strings.TrimSuffix(s.Clipboard, "\n"), "\n")
		at := s.CursorLine
		if after {
			at++
		}
		s.Content = s.Content.InsertLines(at, lines)
		s.CursorLine, s.CursorCol = at, 0
	} else {
		p := s.Cursor()
		if after {
			p.Col = min(p.Col+1, s.Content.LineLen(p.Line))
		}
		var end buffer.Pos
		s.Content, end = s.Content.InsertText(p, s.Clipboard)
		if last, ok := s.Content.Prev(end); ok {
			end = last
		}
		s.CursorLine, s.CursorCol = end.Line, end.Col
	}
	s.touch()
	s.commit()
}
