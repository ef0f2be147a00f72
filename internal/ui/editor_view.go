package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/chris-regnier/caldiary/internal/app"
	"github.com/chris-regnier/caldiary/internal/buffer"
	"github.com/chris-regnier/caldiary/internal/editor"
)

// Lines above and below the editor text: date header, blank, status line.
const editorChrome = 3

type cellKind int

const (
	cellPlain cellKind = iota
	cellMatch
	cellSelected
	cellCursor
)

func (m tuiModel) textHeight() int {
	return max(m.bodyHeight()-editorChrome, 1)
}

func gutterWidth(lines int) int {
	return len(strconv.Itoa(lines)) + 1
}

func (m tuiModel) textWidth() int {
	return max(m.contentWidth()-gutterWidth(len(m.app.Editor.Content)), 1)
}

// scroll keeps the editor cursor inside the visible window.
func (m *tuiModel) scroll() {
	if m.app.Screen != app.ScreenEditor {
		return
	}
	ed := &m.app.Editor
	h := m.textHeight()
	if ed.CursorLine < m.top {
		m.top = ed.CursorLine
	}
	if ed.CursorLine >= m.top+h {
		m.top = ed.CursorLine - h + 1
	}
	if m.top > max(len(ed.Content)-1, 0) {
		m.top = 0
	}

	w := m.textWidth()
	x := displayWidth([]rune(lineAt(ed.Content, ed.CursorLine)), ed.CursorCol)
	if x < m.left {
		m.left = x
	}
	if x >= m.left+w {
		m.left = x - w + 1
	}
}

func lineAt(l buffer.Lines, i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

// displayRune maps a rune to what is drawn for it and its cell width.
func displayRune(r rune) (rune, int) {
	if r == '\t' || r < 0x20 {
		return ' ', 1
	}
	return r, runewidth.RuneWidth(r)
}

// displayWidth is the column at which rune index col starts.
func displayWidth(rs []rune, col int) int {
	w := 0
	for i := 0; i < col && i < len(rs); i++ {
		_, rw := displayRune(rs[i])
		w += rw
	}
	return w
}

func (m tuiModel) editorView() string {
	ed := &m.app.Editor
	th := m.theme

	var b strings.Builder
	b.WriteString(th.HeaderStyle().Render(longDate(ed.Date)))
	if ed.Modified {
		b.WriteString(th.MutedStyle().Render(" [+]"))
	}
	b.WriteString("\n\n")

	sel, hasSel := ed.SelectionRange()
	matches := matchStarts(ed)
	patLen := utf8.RuneCountInString(ed.SearchPattern)
	gw := gutterWidth(len(ed.Content))

	h := m.textHeight()
	for i := m.top; i < m.top+h; i++ {
		if i >= len(ed.Content) {
			b.WriteString(th.MutedStyle().Render("~"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(th.MutedStyle().Render(fmt.Sprintf("%*d ", gw-1, i+1)))
		b.WriteString(m.renderLine(ed, i, sel, hasSel, matches[i], patLen))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	return b.String()
}

func matchStarts(ed *editor.State) map[int][]int {
	if ed.SearchPattern == "" {
		return nil
	}
	out := make(map[int][]int)
	for _, p := range ed.SearchMatches {
		out[p.Line] = append(out[p.Line], p.Col)
	}
	return out
}

// renderLine draws the visible slice of one line, grouping runs of cells
// that share a style.
func (m tuiModel) renderLine(ed *editor.State, line int, sel buffer.Range, hasSel bool, starts []int, patLen int) string {
	rs := []rune(ed.Content[line])
	width := m.textWidth()
	cursorHere := line == ed.CursorLine

	var out strings.Builder
	var run strings.Builder
	kind := cellPlain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(m.cellStyle(kind).Render(run.String()))
		run.Reset()
	}

	x := 0
	for col := 0; col <= len(rs); col++ {
		var r rune
		if col == len(rs) {
			if !cursorHere || ed.CursorCol != col {
				break
			}
			r = ' '
		} else {
			r = rs[col]
		}
		r, w := displayRune(r)
		if x < m.left {
			x += w
			continue
		}
		if x+w > m.left+width {
			break
		}
		x += w

		k := cellPlain
		pos := buffer.Pos{Line: line, Col: col}
		switch {
		case cursorHere && col == ed.CursorCol:
			k = cellCursor
		case hasSel && col < len(rs) && sel.Contains(pos):
			k = cellSelected
		case inMatch(starts, col, patLen):
			k = cellMatch
		}
		if k != kind {
			flush()
			kind = k
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}

func inMatch(starts []int, col, n int) bool {
	for _, s := range starts {
		if col >= s && col < s+n {
			return true
		}
	}
	return false
}

func (m tuiModel) cellStyle(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return m.theme.CursorStyle()
	case cellSelected:
		return m.theme.SelectionStyle()
	case cellMatch:
		return m.theme.MatchStyle()
	}
	return m.theme.base()
}

func (m tuiModel) statusLine() string {
	ed := &m.app.Editor
	th := m.theme

	mode := th.AccentStyle().Bold(true).Reverse(true).Render(" " + ed.Mode.String() + " ")
	left := mode
	if s := ed.Submode.String(); s != "" {
		left += th.base().Render(" ") + th.AccentStyle().Render(s)
	}

	switch {
	case ed.Submode == editor.Search:
		left += th.base().Render(" /" + ed.SearchPattern)
		left += th.MutedStyle().Render(" " + matchCounter(ed))
	case ed.SearchPattern != "":
		left += th.MutedStyle().Render(" /" + ed.SearchPattern + " " + matchCounter(ed))
	}

	right := th.MutedStyle().Render(fmt.Sprintf("%d:%d", ed.CursorLine+1, ed.CursorCol+1))
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + th.base().Render(strings.Repeat(" ", gap)) + right
}

func matchCounter(ed *editor.State) string {
	if len(ed.SearchMatches) == 0 {
		return "[0/0]"
	}
	return fmt.Sprintf("[%d/%d]", ed.SearchIndex+1, len(ed.SearchMatches))
}
