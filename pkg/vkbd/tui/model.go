// Package tui draws the virtual keyboard in a terminal with bubbletea and feeds terminal key
// presses through the keyboard controller.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/editor"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

// columns per key width unit
const keyUnit = 5

type Options struct {
	Theme     *Theme
	Logger    *slog.Logger
	Highlight time.Duration
}

// Model is the bubbletea model of one keyboard session.
type Model struct {
	ctx    context.Context
	ctrl   *keyboard.Controller
	keys   keyMap
	help   help.Model
	theme  *Theme
	logger *slog.Logger

	highlight time.Duration
	width     int

	done      bool
	cancelled bool
}

// redrawMsg asks for a re-render after highlights expire or another source changed the view.
type redrawMsg struct{}

// Redraw is a message that only triggers a re-render. Send it with tea.Program.Send from
// the controller's OnRedraw hook when other goroutines drive the controller.
func Redraw() tea.Msg {
	return redrawMsg{}
}

func New(ctx context.Context, ctrl *keyboard.Controller, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = NewTheme("")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Highlight <= 0 {
		opts.Highlight = keyboard.DefaultHighlight
	}

	return Model{
		ctx:       ctx,
		ctrl:      ctrl,
		keys:      defaultKeyMap(),
		help:      help.New(),
		theme:     opts.Theme,
		logger:    opts.Logger,
		highlight: opts.Highlight,
		width:     80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case redrawMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var events []keyboard.Event

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.done = true
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.ctrl.MoveCaret(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.ctrl.MoveCaret(1)
		return m, nil
	case key.Matches(msg, m.keys.Language):
		events = languageChord()
	case key.Matches(msg, m.keys.CapsLock):
		events = tap(layout.CapsLock, false)
	default:
		events = m.translate(msg)
	}

	if len(events) == 0 {
		return m, nil
	}

	for _, ev := range events {
		if err := m.ctrl.Handle(m.ctx, ev); err != nil {
			m.logger.Error("Failed to handle terminal key", "key", ev.Key, "error", err)
		}
	}
	return m, m.settle()
}

// settle re-renders once the highlight of the keys just pressed has expired.
func (m Model) settle() tea.Cmd {
	return tea.Tick(m.highlight+10*time.Millisecond, func(time.Time) tea.Msg {
		return redrawMsg{}
	})
}

// translate maps a terminal key to keyboard events. Runes are matched to the key that produces
// them, pressing shift when the glyph lives on a shift map.
func (m Model) translate(msg tea.KeyMsg) []keyboard.Event {
	switch msg.Type {
	case tea.KeySpace:
		return tap(layout.Space, false)
	case tea.KeyEnter:
		return tap(layout.Enter, false)
	case tea.KeyBackspace:
		return tap(layout.Backspace, false)
	case tea.KeyDelete:
		return tap(layout.Delete, false)
	case tea.KeyTab:
		return tap(layout.Tab, false)
	case tea.KeyUp:
		return tap(layout.ArrowUp, false)
	case tea.KeyDown:
		return tap(layout.ArrowDown, false)
	case tea.KeyRunes:
	default:
		return nil
	}

	lang := m.ctrl.Modifiers().Language
	var events []keyboard.Event
	for _, r := range msg.Runes {
		if r == ' ' {
			events = append(events, tap(layout.Space, false)...)
			continue
		}
		id, shifted, ok := layout.Lookup(lang, string(r))
		if !ok {
			m.logger.Debug("No key produces rune", "rune", string(r))
			continue
		}
		events = append(events, tap(id, shifted)...)
	}
	return events
}

func tap(id layout.KeyID, shift bool) []keyboard.Event {
	return []keyboard.Event{
		{Key: id, Kind: keyboard.KeyDown, Shift: shift},
		{Key: id, Kind: keyboard.KeyUp},
	}
}

// languageChord presses and releases Ctrl+Alt, which terminals cannot report on their own.
func languageChord() []keyboard.Event {
	return []keyboard.Event{
		{Key: layout.ControlLeft, Kind: keyboard.KeyDown, Ctrl: true},
		{Key: layout.AltLeft, Kind: keyboard.KeyDown, Ctrl: true, Alt: true},
		{Key: layout.AltLeft, Kind: keyboard.KeyUp, Ctrl: true},
		{Key: layout.ControlLeft, Kind: keyboard.KeyUp},
	}
}

// Done reports whether the session ended.
func (m Model) Done() bool {
	return m.done
}

// Result returns the confirmed text, or keyboard.ErrCancelled.
func (m Model) Result() (keyboard.Result, error) {
	if m.cancelled || !m.done {
		return keyboard.Result{}, keyboard.ErrCancelled
	}
	return keyboard.Result{Text: m.ctrl.State().Text}, nil
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.ctrl.View()

	status := m.theme.Status.Render(
		i18n.GetStringWithData(i18n.StatusLanguage, map[string]interface{}{"Language": i18n.GetString(i18n.LanguageName)}) +
			"  " + i18n.GetPluralString(i18n.CharCount, v.Text.Len()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderText(v.Text),
		m.renderKeys(v),
		status,
		m.help.View(m.keys),
	)
}

func (m Model) renderText(s editor.State) string {
	boxWidth := max(m.width-4, 20)

	if s.Text == "" {
		return m.theme.TextBox.Width(boxWidth).Render(
			m.theme.Caret.Render(" ") + m.theme.Placeholder.Render(i18n.GetString(i18n.Placeholder)),
		)
	}

	var b strings.Builder
	runes := []rune(s.Text)
	for i := 0; i <= len(runes); i++ {
		if s.Collapsed() && i == s.Start {
			if i == len(runes) || runes[i] == '\n' {
				b.WriteString(m.theme.Caret.Render(" "))
			} else {
				b.WriteString(m.theme.Caret.Render(string(runes[i])))
				continue
			}
		}
		if i == len(runes) {
			break
		}
		if !s.Collapsed() && i >= s.Start && i < s.End && runes[i] != '\n' {
			b.WriteString(m.theme.Selection.Render(string(runes[i])))
			continue
		}
		b.WriteRune(runes[i])
	}

	return m.theme.TextBox.Width(boxWidth).Render(b.String())
}

func (m Model) renderKeys(v keyboard.View) string {
	return renderRows(m.theme, v.Rows)
}
