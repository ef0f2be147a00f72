package editor

import (
	"unicode"

	"github.com/chris-regnier/caldiary/internal/buffer"
)

// MoveLeft moves one character left, staying on the line.
func (s *State) MoveLeft() {
	if s.CursorCol > 0 {
		s.setCursor(buffer.Pos{Line: s.CursorLine, Col: s.CursorCol - 1})
	}
}

// MoveRight moves one character right, up to the end of the line.
func (s *State) MoveRight() {
	s.setCursor(buffer.Pos{Line: s.CursorLine, Col: s.CursorCol + 1})
}

// MoveUp moves one line up, clamping the column.
func (s *State) MoveUp() {
	if s.CursorLine > 0 {
		s.setCursor(buffer.Pos{Line: s.CursorLine - 1, Col: s.CursorCol})
	}
}

// MoveDown moves one line down, clamping the column.
func (s *State) MoveDown() {
	if s.CursorLine < len(s.Content)-1 {
		s.setCursor(buffer.Pos{Line: s.CursorLine + 1, Col: s.CursorCol})
	}
}

// GotoDocumentStart moves to the first character of the document.
func (s *State) GotoDocumentStart() {
	s.setCursor(buffer.Pos{})
}

// GotoDocumentEnd moves to the start of the last line.
func (s *State) GotoDocumentEnd() {
	s.setCursor(buffer.Pos{Line: len(s.Content) - 1})
}

// GotoLineStart moves to column 0.
func (s *State) GotoLineStart() {
	s.setCursor(buffer.Pos{Line: s.CursorLine})
}

// GotoLineEnd moves past the last character of the line.
func (s *State) GotoLineEnd() {
	s.setCursor(buffer.Pos{Line: s.CursorLine, Col: s.Content.LineLen(s.CursorLine)})
}

type charClass int

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func (s *State) classAt(p buffer.Pos) charClass {
	r, ok := s.Content.RuneAt(p)
	switch {
	case !ok || unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	}
	return classPunct
}

// WordForward moves to the start of the next word.
func (s *State) WordForward() {
	p := s.Cursor()
	if cls := s.classAt(p); cls != classSpace {
		for s.classAt(p) == cls {
			next, ok := s.Content.Next(p)
			if !ok {
				s.setCursor(p)
				return
			}
			p = next
		}
	}
	for s.classAt(p) == classSpace {
		next, ok := s.Content.Next(p)
		if !ok {
			break
		}
		p = next
	}
	s.setCursor(p)
}

// WordBackward moves to the start of the current or previous word.
func (s *State) WordBackward() {
	p, ok := s.Content.Prev(s.Cursor())
	if !ok {
		return
	}
	for s.classAt(p) == classSpace {
		prev, ok := s.Content.Prev(p)
		if !ok {
			s.setCursor(p)
			return
		}
		p = prev
	}
	cls := s.classAt(p)
	for {
		prev, ok := s.Content.Prev(p)
		if !ok || s.classAt(prev) != cls {
			break
		}
		p = prev
	}
	s.setCursor(p)
}

// WordEnd moves to the last character of the current or next word.
func (s *State) WordEnd() {
	p, ok := s.Content.Next(s.Cursor())
	if !ok {
		return
	}
	for s.classAt(p) == classSpace {
		next, ok := s.Content.Next(p)
		if !ok {
			s.setCursor(p)
			return
		}
		p = next
	}
	cls := s.classAt(p)
	for {
		next, ok := s.Content.Next(p)
		if !ok || s.classAt(next) != cls {
			break
		}
		p = next
	}
	s.setCursor(p)
}
