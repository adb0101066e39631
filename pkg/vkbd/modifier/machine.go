package modifier

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LanguageKey is the preference name the keyboard language is persisted under.
const LanguageKey = "lang"

// Store is the durable preference store the language choice is read from and written to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// State is the live language, shift and caps lock status.
type State struct {
	Language       layout.Language
	ShiftActive    bool
	CapsLockActive bool
}

// Selector returns the key map selector for the state. Caps lock does not take part.
func (s State) Selector() layout.Selector {
	return layout.Selector{Language: s.Language, Shifted: s.ShiftActive}
}

// Machine tracks modifier state for one keyboard. It is not safe for concurrent use;
// the owning controller serialises access.
type Machine struct {
	state  State
	store  Store
	logger *slog.Logger
}

// New builds a machine, restoring the persisted language. Anything other than a stored "ru"
// (including a failing store) starts in English.
func New(ctx context.Context, store Store, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Machine{
		state:  State{Language: layout.English},
		store:  store,
		logger: logger,
	}

	if store == nil {
		return m
	}

	raw, ok, err := store.Get(ctx, LanguageKey)
	switch {
	case err != nil:
		logger.Debug("Failed to load keyboard language, using default", "error", err)
	case ok && raw == string(layout.Russian):
		m.state.Language = layout.Russian
	}

	logger.Debug("Keyboard language restored", "language", m.state.Language)
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Selector returns the selector of the active key map.
func (m *Machine) Selector() layout.Selector {
	return m.state.Selector()
}

// ActiveMap returns the active key map.
func (m *Machine) ActiveMap() layout.KeyMap {
	return layout.Resolve(m.state.Selector())
}

// SetShift feeds the physical shift level into the machine. It only acts on a transition and
// reports whether one happened.
func (m *Machine) SetShift(held bool) bool {
	if held == m.state.ShiftActive {
		return false
	}
	m.state.ShiftActive = held
	m.logger.Debug("Shift transition", "active", held, "layout", m.state.Selector().String())
	return true
}

// ToggleLanguage switches between English and Russian and persists the new choice.
// A failing store is logged; the switch still takes effect.
func (m *Machine) ToggleLanguage(ctx context.Context) State {
	m.state.Language = m.state.Language.Other()

	if m.store != nil {
		if err := m.store.Set(ctx, LanguageKey, string(m.state.Language)); err != nil {
			m.logger.Warn("Failed to persist keyboard language", "language", m.state.Language, "error", err)
		}
	}

	m.logger.Debug("Language toggled", "language", m.state.Language, "layout", m.state.Selector().String())
	return m.state
}

// ToggleCapsLock flips caps lock. Callers must only call it on the key's down edge.
func (m *Machine) ToggleCapsLock() State {
	m.state.CapsLockActive = !m.state.CapsLockActive
	m.logger.Debug("Caps lock toggled", "active", m.state.CapsLockActive)
	return m.state
}

// DisplayGlyph is the glyph a key shows (and, if printable, types) right now: the active map's
// glyph, upper-cased while caps lock is on.
func (m *Machine) DisplayGlyph(id layout.KeyID) (string, error) {
	g, err := layout.Glyph(m.ActiveMap(), id)
	if err != nil {
		return "", err
	}
	if m.state.CapsLockActive && layout.IsPrintable(id) {
		return upper(m.state.Language, g), nil
	}
	return g, nil
}

func upper(lang layout.Language, s string) string {
	tag := language.English
	if lang == layout.Russian {
		tag = language.Russian
	}
	return cases.Upper(tag).String(s)
}
