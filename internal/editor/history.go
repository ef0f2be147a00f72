package editor

import "github.com/chris-regnier/caldiary/internal/buffer"

// maxHistory bounds the number of snapshots kept per document.
const maxHistory = 500

// Snapshot is an immutable copy of the editable state.
type Snapshot struct {
	Content   buffer.Lines
	Cursor    buffer.Pos
	Selection *buffer.Selection
}

func (s *State) snapshot() Snapshot {
	snap := Snapshot{
		Content: s.Content.Clone(),
		Cursor:  s.Cursor(),
	}
	if s.Selection != nil {
		sel := *s.Selection
		snap.Selection = &sel
	}
	return snap
}

// commit pushes the live state when its content differs from the snapshot
// at HistoryIndex. Forward history past HistoryIndex is discarded.
func (s *State) commit() {
	if s.HistoryIndex < len(s.History) && s.History[s.HistoryIndex].Content.Equal(s.Content) {
		return
	}
	s.History = append(s.History[:s.HistoryIndex+1], s.snapshot())
	s.HistoryIndex = len(s.History) - 1
	if s.cleanIndex >= s.HistoryIndex {
		s.cleanIndex = -1
	}

	if over := len(s.History) - maxHistory; over > 0 {
		s.History = append([]Snapshot(nil), s.History[over:]...)
		s.HistoryIndex -= over
		s.cleanIndex -= over
		if s.cleanIndex < 0 {
			s.cleanIndex = -1
		}
	}
}

// CanUndo reports whether an older snapshot exists.
func (s *State) CanUndo() bool {
	return s.HistoryIndex > 0
}

// CanRedo reports whether a newer snapshot exists.
func (s *State) CanRedo() bool {
	return s.HistoryIndex < len(s.History)-1
}

// Undo restores the previous snapshot. It reports false when there is none.
func (s *State) Undo() bool {
	if s.Mode != Normal || !s.CanUndo() {
		return false
	}
	s.HistoryIndex--
	s.restore(s.History[s.HistoryIndex])
	return true
}

// Redo restores the next snapshot. It reports false when there is none.
func (s *State) Redo() bool {
	if s.Mode != Normal || !s.CanRedo() {
		return false
	}
	s.HistoryIndex++
	s.restore(s.History[s.HistoryIndex])
	return true
}

func (s *State) restore(snap Snapshot) {
	s.Content = snap.Content.Clone()
	s.Selection = nil
	if snap.Selection != nil {
		sel := *snap.Selection
		s.Selection = &sel
	}
	p := s.Content.Clamp(snap.Cursor)
	s.CursorLine, s.CursorCol = p.Line, p.Col
	s.Modified = s.HistoryIndex != s.cleanIndex
	s.refreshSearch()
}
