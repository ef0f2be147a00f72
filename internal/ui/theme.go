package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/caldiary/internal/config"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

const defaultPreset = "default-dark"

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	"catppuccin-mocha": {
		Primary:       lipgloss.Color("#CDD6F4"),
		Secondary:     lipgloss.Color("#585B70"),
		Accent:        lipgloss.Color("#CBA6F7"),
		Muted:         lipgloss.Color("#6C7086"),
		Danger:        lipgloss.Color("#F38BA8"),
		Background:    lipgloss.Color("#1E1E2E"),
		MarkdownStyle: "dark",
	},
	"gruvbox-light": {
		Primary:       lipgloss.Color("#3C3836"),
		Secondary:     lipgloss.Color("#A89984"),
		Accent:        lipgloss.Color("#D79921"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#CC241D"),
		Background:    lipgloss.Color("#FBF1C7"),
		MarkdownStyle: "light",
	},
}

// PresetNames lists the built-in theme presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets[defaultPreset]
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Secondary, cfg.Secondary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Danger, cfg.Danger)
	override(&theme.Background, cfg.Background)
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

func (t Theme) base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Background(t.Background)
}

// HelpStyle is used for the footer.
func (t Theme) HelpStyle() lipgloss.Style {
	return t.base().Foreground(t.Muted)
}

// HeaderStyle is used for the month title and the editor date.
func (t Theme) HeaderStyle() lipgloss.Style {
	return t.base().Bold(true)
}

// AccentStyle is used for focused elements and mode badges.
func (t Theme) AccentStyle() lipgloss.Style {
	return t.base().Foreground(t.Accent)
}

// DangerStyle is used for errors and delete prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return t.base().Foreground(t.Danger)
}

// MutedStyle is used for weekday headers and the modified marker.
func (t Theme) MutedStyle() lipgloss.Style {
	return t.base().Foreground(t.Muted)
}

// DayStyle styles one calendar cell.
func (t Theme) DayStyle(selected, today, hasEntry bool) lipgloss.Style {
	s := t.base()
	if hasEntry {
		s = s.Foreground(t.Accent).Bold(true)
	}
	if today {
		s = s.Underline(true)
	}
	if selected {
		s = s.Reverse(true)
	}
	return s
}

// CursorStyle styles the editor cursor cell.
func (t Theme) CursorStyle() lipgloss.Style {
	return t.base().Reverse(true)
}

// SelectionStyle styles selected text.
func (t Theme) SelectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Background).Background(t.Secondary)
}

// MatchStyle styles search matches.
func (t Theme) MatchStyle() lipgloss.Style {
	return t.base().Foreground(t.Accent).Underline(true)
}

// PopupStyle returns the bordered box used for the error popup.
func (t Theme) PopupStyle() lipgloss.Style {
	return t.base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Danger).
		BorderBackground(t.Background).
		Padding(0, 1)
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen pads content to a termWidth x termHeight block in the theme
// background, centering it when contentWidth is narrower than the terminal.
// Each line also ends with \x1b[K so the background reaches the right edge
// even when width measurement is off.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}
	leftStr := bgPad.Render(strings.Repeat(" ", leftPad))

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		var b strings.Builder
		if leftPad > 0 {
			b.WriteString(leftStr)
		}
		b.WriteString(line)
		if rightPad := termWidth - leftPad - lipgloss.Width(line); rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}
	if termHeight > 0 && len(lines) > termHeight {
		lines = lines[:termHeight]
	}
	return strings.Join(lines, "\n")
}
