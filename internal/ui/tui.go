package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/caldiary/internal/app"
	"github.com/chris-regnier/caldiary/internal/logger"
	"github.com/chris-regnier/caldiary/internal/storage"
)

// TUIConfig holds the display settings for the interactive diary.
type TUIConfig struct {
	MaxWidth int // 0 = no limit
	Theme    Theme
	Options  app.Options
}

type tuiModel struct {
	app   *app.Model
	exec  *app.Executor
	theme Theme
	help  help.Model

	maxWidth int
	width    int
	height   int

	// Editor viewport offsets: first visible line and first visible column.
	top  int
	left int
}

func newTUIModel(m *app.Model, exec *app.Executor, cfg TUIConfig) tuiModel {
	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = cfg.Theme.AccentStyle()
	h.Styles.ShortDesc = cfg.Theme.HelpStyle()
	h.Styles.ShortSeparator = cfg.Theme.HelpStyle()
	h.Styles.Ellipsis = cfg.Theme.HelpStyle()
	return tuiModel{
		app:      m,
		exec:     exec,
		theme:    cfg.Theme,
		help:     h,
		maxWidth: cfg.MaxWidth,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		am := app.Interpret(m.app, msg)
		if am == nil {
			return m, nil
		}
		return m.apply(am)
	}
	return m.apply(msg)
}

// apply feeds one message to the app model and runs every command it leads
// to before returning, so the next key always sees the settled model.
func (m tuiModel) apply(msg app.Msg) (tea.Model, tea.Cmd) {
	app.Dispatch(m.app, m.exec, msg)
	m.scroll()
	if m.app.Quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m tuiModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

// bodyHeight is the screen height minus the help footer.
func (m tuiModel) bodyHeight() int {
	return max(m.height-1, 1)
}

func (m tuiModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.app.Quitting {
		return ""
	}

	var body string
	switch {
	case m.app.ShowError:
		body = m.errorView()
	case m.app.Screen == app.ScreenEditor:
		body = m.editorView()
	default:
		body = m.calendarView()
	}

	lines := strings.Split(body, "\n")
	height := m.bodyHeight()
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = append(lines, m.help.ShortHelpView(m.app.HelpKeys()))

	return m.theme.PaintScreen(strings.Join(lines, "\n"), m.width, m.height, m.contentWidth())
}

func (m tuiModel) errorView() string {
	box := m.theme.PopupStyle().
		Width(min(60, max(m.contentWidth()-4, 10))).
		Render(m.theme.DangerStyle().Bold(true).Render("Error") + "\n\n" + m.app.Err)
	return lipgloss.Place(m.contentWidth(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.theme.Background))
}

// RunTUI starts the interactive calendar diary on store.
func RunTUI(store storage.Store, cfg TUIConfig) error {
	dates, err := store.Scan()
	if err != nil {
		return fmt.Errorf("scanning entries: %w", err)
	}
	logger.Info("starting diary", "entries", len(dates))

	var clip app.Clipboard
	if cfg.Options.SystemClipboard {
		clip = app.SystemClipboard{}
	}
	model := newTUIModel(app.NewModel(dates, cfg.Options), app.NewExecutor(store, clip), cfg)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running diary: %w", err)
	}
	logger.Info("diary closed")
	return nil
}
