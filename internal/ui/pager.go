package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	title    string
	ready    bool
	maxWidth int // 0 = no limit
	width    int
	height   int
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.viewportHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = m.viewportHeight()
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

// viewportHeight leaves room for the footer and, when set, the title.
func (m pagerModel) viewportHeight() int {
	h := m.height - 1
	if m.title != "" {
		h -= 2
	}
	return max(h, 1)
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.theme.HeaderStyle().Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	footer := fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100)
	b.WriteString(m.theme.HelpStyle().Render(footer))
	return m.theme.PaintScreen(b.String(), m.width, m.height, m.contentWidth())
}

// PageOutput writes content to w. When w is a terminal and the content is
// taller than the screen, it opens a scrollable pager instead.
func PageOutput(w io.Writer, title, content string, maxWidth int, theme Theme) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return writePlain(w, title, content)
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return writePlain(w, title, content)
	}
	if strings.Count(content, "\n")+1 <= height-4 {
		return writePlain(w, title, content)
	}

	m := pagerModel{content: content, title: title, maxWidth: maxWidth, theme: theme}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(f)).Run()
	return err
}

func writePlain(w io.Writer, title, content string) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", title); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, content)
	return err
}
