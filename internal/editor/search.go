package editor

import (
	"github.com/chris-regnier/caldiary/internal/buffer"
)

func (s *State) startSearch() {
	s.Submode = Search
	s.Selection = nil
	s.SearchPattern = ""
	s.SearchMatches = nil
	s.SearchIndex = 0
	s.searchOrigin = s.Cursor()
}

// SearchInput appends r to the pattern and jumps to the first match at or
// after the position the search started from.
func (s *State) SearchInput(r rune) {
	if s.Submode != Search {
		return
	}
	s.SearchPattern += string(r)
	s.searchFromOrigin()
}

// SearchBackspace drops the last rune of the pattern.
func (s *State) SearchBackspace() {
	if s.Submode != Search || s.SearchPattern == "" {
		return
	}
	rs := []rune(s.SearchPattern)
	s.SearchPattern = string(rs[:len(rs)-1])
	s.searchFromOrigin()
}

// SearchConfirm leaves the Search submode and keeps the matches for n/N.
func (s *State) SearchConfirm() {
	if s.Submode == Search {
		s.Submode = NoSubmode
	}
}

func (s *State) cancelSearch() {
	origin := s.searchOrigin
	s.clearSearch()
	s.Submode = NoSubmode
	s.setCursor(origin)
}

// SearchNext focuses the next match, wrapping at the end.
func (s *State) SearchNext() {
	n := len(s.SearchMatches)
	if n == 0 {
		return
	}
	s.SearchIndex = (s.SearchIndex + 1) % n
	s.setCursor(s.SearchMatches[s.SearchIndex])
}

// SearchPrev focuses the previous match, wrapping at the start.
func (s *State) SearchPrev() {
	n := len(s.SearchMatches)
	if n == 0 {
		return
	}
	s.SearchIndex = (s.SearchIndex - 1 + n) % n
	s.setCursor(s.SearchMatches[s.SearchIndex])
}

func (s *State) searchFromOrigin() {
	s.findMatches()
	if len(s.SearchMatches) == 0 {
		s.setCursor(s.searchOrigin)
		return
	}
	s.SearchIndex = 0
	for i, m := range s.SearchMatches {
		if !m.Less(s.searchOrigin) {
			s.SearchIndex = i
			break
		}
	}
	s.setCursor(s.SearchMatches[s.SearchIndex])
}

// refreshSearch recomputes matches after an edit without moving the cursor.
func (s *State) refreshSearch() {
	if s.SearchPattern == "" {
		return
	}
	s.findMatches()
	if s.SearchIndex >= len(s.SearchMatches) {
		s.SearchIndex = 0
	}
}

// findMatches uses smart case: a pattern without upper-case letters
// matches case-insensitively.
func (s *State) findMatches() {
	s.SearchMatches = s.Content.FindAll(s.SearchPattern, !buffer.HasUpper(s.SearchPattern))
}

func (s *State) clearSearch() {
	s.SearchPattern = ""
	s.SearchMatches = nil
	s.SearchIndex = 0
}
