package layout

import (
	"errors"
	"fmt"
	"slices"
)

// KeyID names a physical key independently of the active language or shift state.
// Values follow the DOM KeyboardEvent.code naming (KeyA, Digit1, ShiftLeft, ...).
type KeyID string

// KeyMap assigns a display glyph to every KeyID for one language/shift combination.
type KeyMap map[KeyID]string

// Language is one of the two supported keyboard languages.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

var ErrUnknownKey = errors.New("unknown key")
var ErrInvalidLanguage = errors.New("invalid language")

// ParseLanguage accepts "en" or "ru".
func ParseLanguage(raw string) (Language, error) {
	switch Language(raw) {
	case English, Russian:
		return Language(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, raw)
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == Russian {
		return English
	}
	return Russian
}

// Selector picks one of the four key maps.
type Selector struct {
	Language Language
	Shifted  bool
}

func (s Selector) String() string {
	if s.Shifted {
		return "shift_" + string(s.Language)
	}
	return "base_" + string(s.Language)
}

var nonPrinting = map[KeyID]bool{
	Enter:        true,
	Backspace:    true,
	Delete:       true,
	Tab:          true,
	ShiftLeft:    true,
	ShiftRight:   true,
	ControlLeft:  true,
	ControlRight: true,
	AltLeft:      true,
	AltRight:     true,
	MetaLeft:     true,
	CapsLock:     true,
}

// Resolve returns the key map for sel. Unknown languages resolve to English.
func Resolve(sel Selector) KeyMap {
	switch {
	case sel.Language == Russian && sel.Shifted:
		return ShiftRU
	case sel.Language == Russian:
		return BaseRU
	case sel.Shifted:
		return ShiftEN
	default:
		return BaseEN
	}
}

// IsPrintable reports whether activating id inserts its glyph (or, for Space, a single space).
func IsPrintable(id KeyID) bool {
	if _, ok := BaseEN[id]; !ok {
		return false
	}
	return !nonPrinting[id]
}

// IsModifier reports whether id only changes modifier state.
func IsModifier(id KeyID) bool {
	switch ActionFor(id).Kind {
	case ActionShift, ActionCapsLock, ActionCtrl, ActionAlt, ActionMeta:
		return true
	}
	return false
}

// Glyph looks id up in m.
func Glyph(m KeyMap, id KeyID) (string, error) {
	g, ok := m[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, id)
	}
	return g, nil
}

// Keys returns every key in row order.
func Keys() []KeyID {
	var keys []KeyID
	for _, row := range rows {
		keys = append(keys, row...)
	}
	return keys
}

// Rows returns the physical key rows, top to bottom.
func Rows() [][]KeyID {
	out := make([][]KeyID, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Width returns the relative width of a key; ordinary keys are 1.
func Width(id KeyID) float64 {
	if w, ok := widths[id]; ok {
		return w
	}
	return 1
}

// Validate checks that all four key maps share the row key set.
func Validate() error {
	maps := map[string]KeyMap{
		"base_en":  BaseEN,
		"base_ru":  BaseRU,
		"shift_en": ShiftEN,
		"shift_ru": ShiftRU,
	}
	keys := Keys()
	for name, m := range maps {
		if len(m) != len(keys) {
			return fmt.Errorf("%s has %d keys, want %d", name, len(m), len(keys))
		}
		for _, id := range keys {
			if _, ok := m[id]; !ok {
				return fmt.Errorf("%s: %w: %s", name, ErrUnknownKey, id)
			}
		}
	}
	return nil
}

// Lookup finds the key that produces glyph, preferring lang's base map, then lang's shift
// map, then the other language. shifted reports whether the match came from a shift map.
func Lookup(lang Language, glyph string) (id KeyID, shifted bool, ok bool) {
	order := []Selector{
		{Language: lang},
		{Language: lang, Shifted: true},
		{Language: lang.Other()},
		{Language: lang.Other(), Shifted: true},
	}
	for _, sel := range order {
		m := Resolve(sel)
		for _, k := range Keys() {
			if IsPrintable(k) && m[k] == glyph {
				return k, sel.Shifted, true
			}
		}
	}
	return "", false, false
}
