package buffer

// Pos is a cursor position: a line index and a rune column in that line.
type Pos struct {
	Line int
	Col  int
}

// Compare orders positions by line, then column.
func (p Pos) Compare(o Pos) int {
	switch {
	case p.Line < o.Line:
		return -1
	case p.Line > o.Line:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	}
	return 0
}

// Less reports whether p comes before o.
func (p Pos) Less(o Pos) bool {
	return p.Compare(o) < 0
}

// Selection is an unordered pair of positions: where the selection began
// and where it currently ends. Linewise selections cover whole lines.
type Selection struct {
	Anchor   Pos
	Cursor   Pos
	Linewise bool
}

// Range is a normalized selection with Start <= End. End is exclusive.
type Range struct {
	Start    Pos
	End      Pos
	Linewise bool
}

// Normalize orders the selection endpoints. The result does not depend on
// which direction the selection was extended in.
func Normalize(s Selection) Range {
	start, end := s.Anchor, s.Cursor
	if end.Less(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end, Linewise: s.Linewise}
}

// Contains reports whether p lies inside r.
func (r Range) Contains(p Pos) bool {
	if r.Linewise {
		return p.Line >= r.Start.Line && p.Line <= r.End.Line
	}
	return !p.Less(r.Start) && p.Less(r.End)
}
