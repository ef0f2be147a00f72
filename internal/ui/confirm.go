package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "enter", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary)
	return fmt.Sprintf("%s %s ",
		promptStyle.Render(m.prompt),
		m.theme.DangerStyle().Render("[y/N]"),
	)
}

// Confirm asks a yes/no question on the terminal. Anything but "y" declines.
func Confirm(prompt string, theme Theme) (bool, error) {
	return confirm(prompt, theme)
}

// ConfirmIO is Confirm reading keys from in and drawing to out.
func ConfirmIO(in io.Reader, out io.Writer, prompt string, theme Theme) (bool, error) {
	return confirm(prompt, theme, tea.WithInput(in), tea.WithOutput(out))
}

func confirm(prompt string, theme Theme, opts ...tea.ProgramOption) (bool, error) {
	result, err := tea.NewProgram(confirmModel{prompt: prompt, theme: theme}, opts...).Run()
	if err != nil {
		return false, err
	}
	return result.(confirmModel).confirmed, nil
}
