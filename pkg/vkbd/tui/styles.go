package tui

import "github.com/charmbracelet/lipgloss"

const defaultAccent = "#7D56F4"

// Theme holds the lipgloss styles the keyboard is drawn with.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Text   lipgloss.Color

	Key       lipgloss.Style
	KeyModKey lipgloss.Style
	KeyActive lipgloss.Style
	KeyLocked lipgloss.Style

	TextBox     lipgloss.Style
	Caret       lipgloss.Style
	Selection   lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
}

// NewTheme builds the styles around accent, a #RRGGBB color. Empty uses the default.
func NewTheme(accent string) *Theme {
	if accent == "" {
		accent = defaultAccent
	}
	if accent[0] != '#' {
		accent = "#" + accent
	}

	t := &Theme{
		Accent: lipgloss.Color(accent),
		Muted:  lipgloss.Color("#6C6C6C"),
		Text:   lipgloss.Color("#EEEEEE"),
	}

	t.Key = lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Align(lipgloss.Center)
	t.KeyModKey = t.Key.Foreground(t.Muted)
	t.KeyActive = t.Key.
		Foreground(lipgloss.Color("#000000")).
		Background(t.Accent).
		BorderForeground(t.Accent)
	t.KeyLocked = t.Key.
		Foreground(t.Accent).
		BorderForeground(t.Accent).
		Bold(true)

	t.TextBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)
	t.Caret = lipgloss.NewStyle().Reverse(true)
	t.Selection = lipgloss.NewStyle().Background(t.Accent).Foreground(lipgloss.Color("#000000"))
	t.Placeholder = lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
	t.Status = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}
