// Package buffer holds the line-oriented text model of the diary editor.
//
// Text is an ordered slice of lines without their line breaks. A document is
// never empty: an empty document is exactly one empty line. All columns are
// rune indices, so slicing is safe for any UTF-8 content.
package buffer

import (
	"slices"
	"strings"
)

// Lines is the content of a document, one string per line.
type Lines []string

// Empty returns the canonical empty document.
func Empty() Lines {
	return Lines{""}
}

// Split breaks text into lines. CRLF line endings are folded into LF and an
// empty text becomes the canonical empty document.
func Split(text string) Lines {
	if text == "" {
		return Empty()
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return Lines(strings.Split(text, "\n"))
}

// Join is the inverse of Split.
func (l Lines) Join() string {
	return strings.Join(l, "\n")
}

// Clone returns a copy that shares no backing array with l.
func (l Lines) Clone() Lines {
	return slices.Clone(l)
}

// Equal reports whether both documents hold the same lines.
func (l Lines) Equal(o Lines) bool {
	return slices.Equal(l, o)
}

// IsBlank reports whether the document holds only whitespace.
func (l Lines) IsBlank() bool {
	for _, line := range l {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// LineLen returns the length of line i in runes, or 0 when i is out of range.
func (l Lines) LineLen(i int) int {
	if i < 0 || i >= len(l) {
		return 0
	}
	return runeLen(l[i])
}

// LastPos returns the position just past the final character.
func (l Lines) LastPos() Pos {
	last := len(l) - 1
	if last < 0 {
		return Pos{}
	}
	return Pos{Line: last, Col: l.LineLen(last)}
}

// Clamp pins p into the document: the line into [0, len-1] and the column
// into [0, LineLen].
func (l Lines) Clamp(p Pos) Pos {
	if len(l) == 0 {
		return Pos{}
	}
	p.Line = min(max(p.Line, 0), len(l)-1)
	p.Col = min(max(p.Col, 0), l.LineLen(p.Line))
	return p
}

// RuneAt returns the character at p. The end of a non-final line reads as
// '\n'; the end of the final line reports false.
func (l Lines) RuneAt(p Pos) (rune, bool) {
	if p.Line < 0 || p.Line >= len(l) {
		return 0, false
	}
	rs := []rune(l[p.Line])
	if p.Col >= 0 && p.Col < len(rs) {
		return rs[p.Col], true
	}
	if p.Col == len(rs) && p.Line < len(l)-1 {
		return '\n', true
	}
	return 0, false
}

// Next returns the position after p, stepping over line breaks.
func (l Lines) Next(p Pos) (Pos, bool) {
	if p.Col < l.LineLen(p.Line) {
		return Pos{Line: p.Line, Col: p.Col + 1}, true
	}
	if p.Line < len(l)-1 {
		return Pos{Line: p.Line + 1}, true
	}
	return p, false
}

// Prev returns the position before p, stepping over line breaks.
func (l Lines) Prev(p Pos) (Pos, bool) {
	if p.Col > 0 {
		return Pos{Line: p.Line, Col: p.Col - 1}, true
	}
	if p.Line > 0 {
		return Pos{Line: p.Line - 1, Col: l.LineLen(p.Line - 1)}, true
	}
	return p, false
}

// InsertRune inserts r at p and returns the position after it. A line index
// past the end of the document first grows the document with empty lines.
// Inserting '\n' splits the line.
func (l Lines) InsertRune(p Pos, r rune) (Lines, Pos) {
	for p.Line >= len(l) {
		l = append(l, "")
	}
	if r == '\n' {
		return l.SplitLine(p)
	}
	rs := []rune(l[p.Line])
	col := min(max(p.Col, 0), len(rs))
	rs = slices.Insert(rs, col, r)
	l[p.Line] = string(rs)
	return l, Pos{Line: p.Line, Col: col + 1}
}

// Backspace removes the character before p. At column 0 the line is joined
// onto the end of the previous one.
func (l Lines) Backspace(p Pos) (Lines, Pos) {
	if p.Line < 0 || p.Line >= len(l) {
		return l, p
	}
	if p.Col > 0 {
		rs := []rune(l[p.Line])
		col := min(p.Col, len(rs))
		rs = slices.Delete(rs, col-1, col)
		l[p.Line] = string(rs)
		return l, Pos{Line: p.Line, Col: col - 1}
	}
	if p.Line == 0 {
		return l, p
	}
	join := l.LineLen(p.Line - 1)
	l[p.Line-1] += l[p.Line]
	l = slices.Delete(l, p.Line, p.Line+1)
	return l, Pos{Line: p.Line - 1, Col: join}
}

// SplitLine breaks the line at p. The tail becomes a new line directly
// below and the returned position is its start.
func (l Lines) SplitLine(p Pos) (Lines, Pos) {
	for p.Line >= len(l) {
		l = append(l, "")
	}
	rs := []rune(l[p.Line])
	col := min(max(p.Col, 0), len(rs))
	head, tail := string(rs[:col]), string(rs[col:])
	l[p.Line] = head
	l = slices.Insert(l, p.Line+1, tail)
	return l, Pos{Line: p.Line + 1}
}

// InsertText inserts a possibly multi-line text at p and returns the
// position just past the inserted text.
func (l Lines) InsertText(p Pos, text string) (Lines, Pos) {
	if text == "" {
		return l, p
	}
	for p.Line >= len(l) {
		l = append(l, "")
	}
	parts := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	rs := []rune(l[p.Line])
	col := min(max(p.Col, 0), len(rs))
	head, tail := string(rs[:col]), string(rs[col:])

	if len(parts) == 1 {
		l[p.Line] = head + parts[0] + tail
		return l, Pos{Line: p.Line, Col: col + runeLen(parts[0])}
	}

	last := parts[len(parts)-1]
	inserted := make([]string, 0, len(parts)-1)
	inserted = append(inserted, parts[1:len(parts)-1]...)
	inserted = append(inserted, last+tail)
	l[p.Line] = head + parts[0]
	l = slices.Insert(l, p.Line+1, inserted...)
	return l, Pos{Line: p.Line + len(parts) - 1, Col: runeLen(last)}
}

// InsertLines inserts whole lines before line index at.
func (l Lines) InsertLines(at int, lines []string) Lines {
	at = min(max(at, 0), len(l))
	return slices.Insert(l, at, lines...)
}

// Delete removes the text covered by r and returns it. A linewise range
// removes its lines entirely; the returned text then ends with a line break.
// The document never becomes empty.
func (l Lines) Delete(r Range) (Lines, string) {
	if len(l) == 0 {
		return Empty(), ""
	}
	if r.Linewise {
		first := min(max(r.Start.Line, 0), len(l)-1)
		last := min(max(r.End.Line, first), len(l)-1)
		removed := strings.Join(l[first:last+1], "\n") + "\n"
		l = slices.Delete(l, first, last+1)
		if len(l) == 0 {
			l = Empty()
		}
		return l, removed
	}

	start, end := l.Clamp(r.Start), l.Clamp(r.End)
	if !start.Less(end) {
		return l, ""
	}
	removed, _ := l.Text(Range{Start: start, End: end})

	head := []rune(l[start.Line])[:start.Col]
	tail := []rune(l[end.Line])[end.Col:]
	l[start.Line] = string(head) + string(tail)
	l = slices.Delete(l, start.Line+1, end.Line+1)
	return l, removed
}

// Text extracts the text covered by r. It reports false when the end line is
// outside the document. Columns are clamped to their line lengths.
func (l Lines) Text(r Range) (string, bool) {
	if r.End.Line < 0 || r.End.Line >= len(l) || r.Start.Line < 0 {
		return "", false
	}
	if r.Start.Line == r.End.Line {
		return sliceRunes(l[r.Start.Line], r.Start.Col, r.End.Col), true
	}

	var b strings.Builder
	b.WriteString(sliceRunes(l[r.Start.Line], r.Start.Col, l.LineLen(r.Start.Line)))
	b.WriteByte('\n')
	for i := r.Start.Line + 1; i < r.End.Line; i++ {
		b.WriteString(l[i])
		b.WriteByte('\n')
	}
	b.WriteString(sliceRunes(l[r.End.Line], 0, r.End.Col))
	return b.String(), true
}

func runeLen(s string) int {
	return len([]rune(s))
}

// sliceRunes returns s[from:to] in rune offsets, clamping both ends.
func sliceRunes(s string, from, to int) string {
	rs := []rune(s)
	from = min(max(from, 0), len(rs))
	to = min(max(to, from), len(rs))
	return string(rs[from:to])
}
