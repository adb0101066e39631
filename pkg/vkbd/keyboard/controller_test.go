package keyboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/editor"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	c, err := New(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func handleAll(t *testing.T, c *Controller, events ...Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, c.Handle(context.Background(), ev))
	}
}

func TestClickTyping(t *testing.T) {
	var edits []editor.State
	c := newController(t, Options{OnEdit: func(s editor.State) { edits = append(edits, s) }})

	handleAll(t, c, Press(layout.KeyH), Press(layout.KeyI), Press(layout.Space), Press(layout.Digit1))

	assert.Equal(t, editor.State{Text: "hi 1", Start: 4, End: 4}, c.State())
	require.Len(t, edits, 4)
	assert.Equal(t, "h", edits[0].Text)
}

func TestEditingKeys(t *testing.T) {
	c := newController(t, Options{Text: "abcd", TabWidth: 2})

	c.SetSelection(1, 3)
	handleAll(t, c, Press(layout.KeyX))
	assert.Equal(t, editor.State{Text: "axd", Start: 2, End: 2}, c.State())

	handleAll(t, c, Press(layout.Backspace))
	assert.Equal(t, editor.State{Text: "ad", Start: 1, End: 1}, c.State())

	handleAll(t, c, Press(layout.Delete))
	assert.Equal(t, editor.State{Text: "a", Start: 1, End: 1}, c.State())

	handleAll(t, c, Press(layout.Enter), Press(layout.Tab))
	assert.Equal(t, editor.State{Text: "a\n  ", Start: 4, End: 4}, c.State())

	c.MoveCaret(-10)
	handleAll(t, c, Press(layout.Backspace))
	assert.Equal(t, editor.State{Text: "a\n  ", Start: 0, End: 0}, c.State())
}

func TestDefaultTabWidth(t *testing.T) {
	c := newController(t, Options{})
	handleAll(t, c, Press(layout.Tab))
	assert.Equal(t, editor.State{Text: "    ", Start: 4, End: 4}, c.State())
}

func TestPhysicalShiftIsEdgeTriggered(t *testing.T) {
	redraws := atomic.NewInt64(0)
	c := newController(t, Options{Highlight: time.Hour, OnRedraw: func() { redraws.Inc() }})

	handleAll(t, c, Event{Key: layout.ShiftLeft, Kind: KeyDown, Shift: true})
	assert.True(t, c.Modifiers().ShiftActive)
	assert.Equal(t, map[layout.KeyID]string(layout.ShiftEN), c.View().Glyphs())

	handleAll(t, c,
		Event{Key: layout.KeyA, Kind: KeyDown, Shift: true},
		Event{Key: layout.KeyA, Kind: KeyUp, Shift: true},
		Event{Key: layout.Digit1, Kind: KeyDown, Shift: true},
	)
	assert.Equal(t, "A!", c.State().Text)

	handleAll(t, c, Event{Key: layout.ShiftLeft, Kind: KeyUp})
	assert.False(t, c.Modifiers().ShiftActive)
	assert.Equal(t, map[layout.KeyID]string(layout.BaseEN), c.View().Glyphs())

	before := redraws.Load()
	handleAll(t, c, Event{Key: layout.ShiftLeft, Kind: KeyUp})
	assert.Equal(t, before, redraws.Load())
}

func TestReleasingOneOfTwoShiftsKeepsShift(t *testing.T) {
	redraws := atomic.NewInt64(0)
	c := newController(t, Options{Highlight: time.Hour, OnRedraw: func() { redraws.Inc() }})

	handleAll(t, c,
		Event{Key: layout.ShiftLeft, Kind: KeyDown, Shift: true},
		Event{Key: layout.ShiftRight, Kind: KeyDown, Shift: true},
	)
	before := redraws.Load()

	handleAll(t, c, Event{Key: layout.ShiftLeft, Kind: KeyUp, Shift: true})
	assert.True(t, c.Modifiers().ShiftActive)
	assert.Equal(t, before, redraws.Load())

	handleAll(t, c, Event{Key: layout.KeyA, Kind: KeyDown, Shift: true})
	assert.Equal(t, "A", c.State().Text)

	handleAll(t, c, Event{Key: layout.ShiftRight, Kind: KeyUp})
	assert.False(t, c.Modifiers().ShiftActive)
}

func TestShiftFlagWithoutShiftKeyEvents(t *testing.T) {
	c := newController(t, Options{})

	handleAll(t, c,
		Event{Key: layout.KeyB, Kind: KeyDown, Shift: true},
		Event{Key: layout.KeyB, Kind: KeyDown},
	)
	assert.Equal(t, "Bb", c.State().Text)
}

func TestCtrlAltChordTogglesOncePerPress(t *testing.T) {
	ctx := context.Background()
	store := prefs.NewMemoryStore()
	var languages []layout.Language
	c := newController(t, Options{Store: store, OnLanguage: func(l layout.Language) { languages = append(languages, l) }})

	handleAll(t, c,
		Event{Key: layout.ControlLeft, Kind: KeyDown, Ctrl: true},
		Event{Key: layout.AltLeft, Kind: KeyDown, Ctrl: true, Alt: true},
		Event{Key: layout.AltLeft, Kind: KeyDown, Ctrl: true, Alt: true, Repeat: true},
	)
	assert.Equal(t, layout.Russian, c.Modifiers().Language)
	assert.Equal(t, []layout.Language{layout.Russian}, languages)

	v, ok, err := store.Get(ctx, modifier.LanguageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ru", v)

	handleAll(t, c, Event{Key: layout.KeyQ, Kind: KeyDown, Ctrl: true, Alt: true})
	assert.Equal(t, layout.Russian, c.Modifiers().Language)

	handleAll(t, c,
		Event{Key: layout.AltLeft, Kind: KeyUp, Ctrl: true},
		Event{Key: layout.AltRight, Kind: KeyDown, Ctrl: true, Alt: true},
	)
	assert.Equal(t, layout.English, c.Modifiers().Language)
	assert.Equal(t, []layout.Language{layout.Russian, layout.English}, languages)
}

func TestClickedCtrlAltLatch(t *testing.T) {
	c := newController(t, Options{})

	handleAll(t, c, Press(layout.AltRight))
	v := c.View()
	k, ok := v.Key(layout.AltRight)
	require.True(t, ok)
	assert.True(t, k.Locked)
	assert.Equal(t, layout.English, v.Modifiers.Language)

	handleAll(t, c, Press(layout.ControlRight))
	assert.Equal(t, layout.Russian, c.Modifiers().Language)
	k, _ = c.View().Key(layout.AltRight)
	assert.False(t, k.Locked)

	handleAll(t, c, Press(layout.KeyQ))
	assert.Equal(t, "й", c.State().Text)
}

func TestClickedShiftLatches(t *testing.T) {
	c := newController(t, Options{})

	handleAll(t, c, Press(layout.ShiftRight), Press(layout.KeyQ), Press(layout.KeyQ))
	assert.Equal(t, "QQ", c.State().Text)
	k, _ := c.View().Key(layout.ShiftLeft)
	assert.True(t, k.Locked)

	handleAll(t, c, Press(layout.ShiftRight), Press(layout.KeyQ))
	assert.Equal(t, "QQq", c.State().Text)
}

func TestLanguageRestoredOnRestart(t *testing.T) {
	store := prefs.NewMemoryStore()
	first := newController(t, Options{Store: store})
	handleAll(t, first, Press(layout.ControlLeft), Press(layout.AltLeft))
	first.Close()

	second := newController(t, Options{Store: store})
	assert.Equal(t, map[layout.KeyID]string(layout.BaseRU), second.View().Glyphs())
}

func TestCapsLockSurvivesLayoutChanges(t *testing.T) {
	c := newController(t, Options{})

	handleAll(t, c,
		Event{Key: layout.CapsLock, Kind: KeyDown},
		Event{Key: layout.CapsLock, Kind: KeyDown, Repeat: true},
		Event{Key: layout.CapsLock, Kind: KeyUp},
	)
	assert.True(t, c.Modifiers().CapsLockActive)

	handleAll(t, c, Press(layout.KeyA))
	assert.Equal(t, "A", c.State().Text)

	handleAll(t, c, Press(layout.ControlLeft), Press(layout.AltLeft))
	v := c.View()
	k, _ := v.Key(layout.KeyQ)
	assert.Equal(t, "Й", k.Glyph)
	k, _ = v.Key(layout.CapsLock)
	assert.True(t, k.Locked)
	assert.Equal(t, "CapsLock", k.Glyph)

	handleAll(t, c, Press(layout.CapsLock))
	k, _ = c.View().Key(layout.KeyQ)
	assert.Equal(t, "й", k.Glyph)
}

func TestSyncCapsLock(t *testing.T) {
	c := newController(t, Options{})

	c.SyncCapsLock(true)
	assert.True(t, c.Modifiers().CapsLockActive)
	c.SyncCapsLock(true)
	assert.True(t, c.Modifiers().CapsLockActive)
	c.SyncCapsLock(false)
	assert.False(t, c.Modifiers().CapsLockActive)
}

func TestHighlightReleases(t *testing.T) {
	redraws := atomic.NewInt64(0)
	c := newController(t, Options{Highlight: 20 * time.Millisecond, OnRedraw: func() { redraws.Inc() }})

	handleAll(t, c, Press(layout.KeyZ))
	k, _ := c.View().Key(layout.KeyZ)
	assert.True(t, k.Active)
	afterPress := redraws.Load()

	assert.Eventually(t, func() bool {
		k, _ := c.View().Key(layout.KeyZ)
		return !k.Active
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return redraws.Load() > afterPress }, time.Second, 5*time.Millisecond)

	assert.Equal(t, "z", c.State().Text)
}

func TestCloseStopsHighlightsAndEvents(t *testing.T) {
	c := newController(t, Options{Highlight: time.Hour})

	handleAll(t, c, Press(layout.KeyZ))
	c.Close()

	k, _ := c.View().Key(layout.KeyZ)
	assert.False(t, k.Active)

	handleAll(t, c, Press(layout.KeyZ))
	assert.Equal(t, "z", c.State().Text)
}

func TestUnknownKey(t *testing.T) {
	c := newController(t, Options{})
	err := c.Handle(context.Background(), Press("F13"))
	assert.ErrorIs(t, err, layout.ErrUnknownKey)
	assert.Empty(t, c.State().Text)
}

func TestViewShape(t *testing.T) {
	c := newController(t, Options{})
	v := c.View()

	require.Len(t, v.Rows, len(layout.Rows()))
	total := 0
	for _, row := range v.Rows {
		total += len(row)
	}
	assert.Equal(t, len(layout.Keys()), total)

	k, ok := v.Key(layout.Space)
	require.True(t, ok)
	assert.True(t, k.Printable)
	assert.Equal(t, layout.Width(layout.Space), k.Width)

	k, _ = v.Key(layout.Enter)
	assert.False(t, k.Printable)
}

func TestConcurrentInputStaysValid(t *testing.T) {
	c := newController(t, Options{Highlight: time.Millisecond})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch (g + i) % 4 {
				case 0, 1:
					_ = c.Handle(context.Background(), Press(layout.KeyA))
				case 2:
					c.MoveCaret(-1)
				case 3:
					_ = c.Handle(context.Background(), Event{Key: layout.ShiftLeft, Kind: KeyDown})
				}
				_ = c.View()
			}
		}(g)
	}
	wg.Wait()

	s := c.State()
	assert.True(t, s.Valid())
	assert.Equal(t, 200, s.Len())
}
