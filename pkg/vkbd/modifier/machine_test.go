package modifier

import (
	"context"
	"errors"
	"testing"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func snapshot(t *testing.T, m *Machine) map[layout.KeyID]string {
	t.Helper()
	out := map[layout.KeyID]string{}
	for _, id := range layout.Keys() {
		g, err := m.DisplayGlyph(id)
		require.NoError(t, err)
		out[id] = g
	}
	return out
}

func TestStartupLanguage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		stored map[string]string
		getErr error
		want   layout.Language
	}{
		{"missing preference", nil, nil, layout.English},
		{"stored ru", map[string]string{LanguageKey: "ru"}, nil, layout.Russian},
		{"stored en", map[string]string{LanguageKey: "en"}, nil, layout.English},
		{"garbage", map[string]string{LanguageKey: "klingon"}, nil, layout.English},
		{"store failure", nil, errors.New("disk on fire"), layout.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			for k, v := range tt.stored {
				store.values[k] = v
			}
			store.getErr = tt.getErr

			m := New(ctx, store, nil)
			st := m.State()
			assert.Equal(t, tt.want, st.Language)
			assert.False(t, st.ShiftActive)
			assert.False(t, st.CapsLockActive)
			assert.Equal(t, layout.Selector{Language: tt.want}, m.Selector())
		})
	}

	assert.Equal(t, layout.English, New(ctx, nil, nil).State().Language)
}

func TestShiftIsEdgeTriggered(t *testing.T) {
	m := New(context.Background(), nil, nil)

	assert.False(t, m.SetShift(false))
	assert.True(t, m.SetShift(true))
	assert.False(t, m.SetShift(true))
	assert.Equal(t, layout.ShiftEN["KeyA"], m.ActiveMap()["KeyA"])
	assert.True(t, m.SetShift(false))
	assert.False(t, m.SetShift(false))
}

func TestShiftRoundTripRestoresBaseMap(t *testing.T) {
	m := New(context.Background(), nil, nil)
	before := snapshot(t, m)

	m.SetShift(true)
	assert.NotEqual(t, before, snapshot(t, m))
	m.SetShift(false)

	assert.Equal(t, before, snapshot(t, m))
	assert.Equal(t, map[layout.KeyID]string(layout.BaseEN), before)
}

func TestShiftReleasedAfterLanguageChange(t *testing.T) {
	m := New(context.Background(), nil, nil)

	m.SetShift(true)
	m.ToggleLanguage(context.Background())
	assert.Equal(t, "shift_ru", m.Selector().String())

	m.SetShift(false)
	assert.Equal(t, "base_ru", m.Selector().String())
}

func TestLanguageTogglePersists(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	m := New(ctx, store, nil)
	st := m.ToggleLanguage(ctx)
	assert.Equal(t, layout.Russian, st.Language)
	assert.Equal(t, "ru", store.values[LanguageKey])

	restarted := New(ctx, store, nil)
	assert.Equal(t, map[layout.KeyID]string(layout.BaseRU), snapshot(t, restarted))

	restarted.ToggleLanguage(ctx)
	assert.Equal(t, "en", store.values[LanguageKey])
	assert.Equal(t, 2, store.sets)
}

func TestLanguageToggleSurvivesStoreFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.setErr = errors.New("read-only")

	m := New(ctx, store, nil)
	assert.Equal(t, layout.Russian, m.ToggleLanguage(ctx).Language)
}

func TestCapsLockPairsAreIdempotent(t *testing.T) {
	for _, lang := range []layout.Language{layout.English, layout.Russian} {
		t.Run(string(lang), func(t *testing.T) {
			m := New(context.Background(), nil, nil)
			if lang == layout.Russian {
				m.ToggleLanguage(context.Background())
			}
			original := snapshot(t, m)

			m.ToggleCapsLock()
			capped := snapshot(t, m)
			assert.NotEqual(t, original, capped)

			m.ToggleCapsLock()
			assert.Equal(t, original, snapshot(t, m))
		})
	}
}

func TestCapsLockFoldsPrintableGlyphsOnly(t *testing.T) {
	m := New(context.Background(), nil, nil)
	m.ToggleCapsLock()

	g, err := m.DisplayGlyph(layout.KeyQ)
	require.NoError(t, err)
	assert.Equal(t, "Q", g)

	g, err = m.DisplayGlyph(layout.CapsLock)
	require.NoError(t, err)
	assert.Equal(t, "CapsLock", g)

	g, err = m.DisplayGlyph(layout.Digit1)
	require.NoError(t, err)
	assert.Equal(t, "1", g)

	m.ToggleLanguage(context.Background())
	g, err = m.DisplayGlyph(layout.Backquote)
	require.NoError(t, err)
	assert.Equal(t, "Ё", g)

	m.SetShift(true)
	g, err = m.DisplayGlyph(layout.KeyQ)
	require.NoError(t, err)
	assert.Equal(t, "Й", g)
}

func TestDisplayGlyphUnknownKey(t *testing.T) {
	m := New(context.Background(), nil, nil)
	_, err := m.DisplayGlyph("F24")
	assert.ErrorIs(t, err, layout.ErrUnknownKey)
}
