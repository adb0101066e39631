package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/i18n"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/keyboard"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
)

func newModel(t *testing.T, text string) (Model, *keyboard.Controller) {
	t.Helper()
	require.NoError(t, i18n.Init())
	t.Cleanup(func() { i18n.SetLanguage(language.English) })

	ctrl, err := keyboard.New(context.Background(), keyboard.Options{
		Text:       text,
		Highlight:  time.Hour,
		OnLanguage: func(l layout.Language) { _ = i18n.SetWithCode(string(l)) },
	})
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)

	return New(context.Background(), ctrl, Options{}), ctrl
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingRunes(t *testing.T) {
	m, ctrl := newModel(t, "")

	m = send(t, m, runes("H"), runes("i"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("!"))
	assert.Equal(t, "Hi !", ctrl.State().Text)
	assert.False(t, ctrl.Modifiers().ShiftActive)

	send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Hi \n    ", ctrl.State().Text)
}

func TestCyrillicRunesTypeByKeyPosition(t *testing.T) {
	m, ctrl := newModel(t, "")

	send(t, m, runes("й"))
	assert.Equal(t, "q", ctrl.State().Text)

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT}, runes("й"), runes("Q"))
	assert.Equal(t, layout.Russian, ctrl.Modifiers().Language)
	assert.Equal(t, "qйЙ", ctrl.State().Text)
}

func TestCapsLockAndCaretKeys(t *testing.T) {
	m, ctrl := newModel(t, "ac")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.True(t, ctrl.Modifiers().CapsLockActive)

	send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("b"))
	assert.Equal(t, "aBc", ctrl.State().Text)
	assert.Equal(t, 2, ctrl.State().Start)

	send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "aBc", ctrl.State().Text)
}

func TestConfirmAndCancel(t *testing.T) {
	m, _ := newModel(t, "done")

	_, err := m.Result()
	assert.ErrorIs(t, err, keyboard.ErrCancelled)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	res, err := next.(Model).Result()
	require.NoError(t, err)
	assert.Equal(t, "done", res.Text)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).Done())
	_, err = next.(Model).Result()
	assert.ErrorIs(t, err, keyboard.ErrCancelled)
}

func TestViewShowsPlaceholderAndLayout(t *testing.T) {
	m, _ := newModel(t, "")

	view := m.View()
	assert.Contains(t, view, "Enter something...")
	assert.Contains(t, view, "CapsLock")
	assert.Contains(t, view, "English")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	view = m.View()
	assert.Contains(t, view, "Введите что-нибудь...")
	assert.Contains(t, view, "й")
	assert.Contains(t, view, "Русский")
}

func TestViewShowsText(t *testing.T) {
	m, _ := newModel(t, "hello")
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "5 characters")
}

func TestUnmappedRunesAreIgnored(t *testing.T) {
	m, ctrl := newModel(t, "")

	_, cmd := m.Update(runes("€"))
	assert.Nil(t, cmd)
	assert.Empty(t, ctrl.State().Text)
}
