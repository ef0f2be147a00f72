package buffer

import "unicode"

// FindAll returns the start of every non-overlapping occurrence of pattern,
// in document order. Matching never crosses a line break. With foldCase the
// comparison ignores letter case.
func (l Lines) FindAll(pattern string, foldCase bool) []Pos {
	pat := []rune(pattern)
	if len(pat) == 0 {
		return nil
	}
	if foldCase {
		pat = lowerRunes(pat)
	}

	var matches []Pos
	for i, line := range l {
		rs := []rune(line)
		if foldCase {
			rs = lowerRunes(rs)
		}
		for col := 0; col+len(pat) <= len(rs); {
			if runesEqual(rs[col:col+len(pat)], pat) {
				matches = append(matches, Pos{Line: i, Col: col})
				col += len(pat)
				continue
			}
			col++
		}
	}
	return matches
}

// HasUpper reports whether s holds an upper-case letter.
func HasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
