package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keySet(m KeyMap) map[KeyID]bool {
	set := make(map[KeyID]bool, len(m))
	for k := range m {
		set[k] = true
	}
	return set
}

func TestKeyMapsShareKeySet(t *testing.T) {
	require.NoError(t, Validate())

	base := keySet(BaseEN)
	assert.Equal(t, base, keySet(BaseRU))
	assert.Equal(t, base, keySet(ShiftEN))
	assert.Equal(t, base, keySet(ShiftRU))
	assert.Len(t, base, len(Keys()))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{Selector{Language: English}, "q"},
		{Selector{Language: English, Shifted: true}, "Q"},
		{Selector{Language: Russian}, "й"},
		{Selector{Language: Russian, Shifted: true}, "Й"},
	}
	for _, tt := range tests {
		t.Run(tt.sel.String(), func(t *testing.T) {
			g, err := Glyph(Resolve(tt.sel), KeyQ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
		})
	}
}

func TestGlyphUnknownKey(t *testing.T) {
	_, err := Glyph(BaseEN, KeyID("F13"))
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestIsPrintable(t *testing.T) {
	for _, id := range []KeyID{Enter, Backspace, Delete, Tab, ShiftLeft, ShiftRight, ControlLeft, ControlRight, AltLeft, AltRight, MetaLeft, CapsLock} {
		assert.False(t, IsPrintable(id), id)
	}
	for _, id := range []KeyID{KeyA, Digit1, Space, ArrowUp, Backquote, Slash} {
		assert.True(t, IsPrintable(id), id)
	}
	assert.False(t, IsPrintable("Nope"))
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, Action{Kind: ActionIndent, Width: 4}, ActionFor(Tab))
	assert.Equal(t, Action{Kind: ActionIndent, Width: 1}, ActionFor(Space))
	assert.Equal(t, ActionEnter, ActionFor(Enter).Kind)
	assert.Equal(t, ActionShift, ActionFor(ShiftRight).Kind)
	assert.Equal(t, ActionInsert, ActionFor(KeyM).Kind)
	assert.Equal(t, ActionNone, ActionFor("Nope").Kind)
	assert.True(t, IsModifier(CapsLock))
	assert.False(t, IsModifier(Enter))
}

func TestRowsCoverAllKeysOnce(t *testing.T) {
	seen := map[KeyID]int{}
	for _, row := range Rows() {
		for _, id := range row {
			seen[id]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
	assert.Len(t, seen, len(BaseEN))
}

func TestLookup(t *testing.T) {
	id, shifted, ok := Lookup(English, "A")
	require.True(t, ok)
	assert.Equal(t, KeyA, id)
	assert.True(t, shifted)

	id, shifted, ok = Lookup(English, "ж")
	require.True(t, ok)
	assert.Equal(t, Semicolon, id)
	assert.False(t, shifted)

	id, _, ok = Lookup(Russian, " ")
	require.True(t, ok)
	assert.Equal(t, Space, id)

	_, _, ok = Lookup(English, "€")
	assert.False(t, ok)
}

func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("ru")
	require.NoError(t, err)
	assert.Equal(t, Russian, l)
	assert.Equal(t, English, l.Other())

	_, err = ParseLanguage("de")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}
