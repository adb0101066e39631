package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/vkbd/pkg/vkbd/layout"
	"github.com/BrandonKowalski/vkbd/pkg/vkbd/modifier"
)

func openAll(t *testing.T) map[Backend]Store {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	stores := map[Backend]Store{}
	for backend, path := range map[Backend]string{
		BackendTOML:   filepath.Join(dir, "prefs.toml"),
		BackendSQLite: filepath.Join(dir, "prefs.db"),
		BackendMemory: "",
	} {
		s, err := Open(ctx, backend, path, nil)
		require.NoError(t, err, backend)
		t.Cleanup(func() { _ = s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStoresGetSet(t *testing.T) {
	ctx := context.Background()

	for backend, s := range openAll(t) {
		t.Run(string(backend), func(t *testing.T) {
			_, ok, err := s.Get(ctx, "lang")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "lang", "ru"))
			v, ok, err := s.Get(ctx, "lang")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "ru", v)

			require.NoError(t, s.Set(ctx, "lang", "en"))
			v, _, err = s.Get(ctx, "lang")
			require.NoError(t, err)
			assert.Equal(t, "en", v)

			assert.ErrorIs(t, s.Set(ctx, "", "x"), ErrEmptyKey)
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	s, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "lang", "ru"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lang = "ru"`)

	reopened, err := NewFileStore(path, nil)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "lang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ru", v)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("lang = = ="), 0644))

	_, err := NewFileStore(path, nil)
	assert.Error(t, err)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := NewSQLiteStore(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "lang", "ru"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(ctx, path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, ok, err := reopened.Get(ctx, "lang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ru", v)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", "", nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpenFailureIsUntypedNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("lang = = broken"), 0644))

	store, err := Open(context.Background(), BackendTOML, path, nil)
	assert.Error(t, err)
	assert.Nil(t, store)

	store, err = Open(context.Background(), BackendSQLite, "", nil)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestCorruptStoreStartsInEnglish(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("lang = = broken"), 0644))

	store, err := OpenOrMemory(ctx, BackendTOML, path, nil)
	assert.Error(t, err)
	require.IsType(t, &MemoryStore{}, store)
	t.Cleanup(func() { _ = store.Close() })

	m := modifier.New(ctx, store, nil)
	assert.Equal(t, layout.English, m.State().Language)

	m.ToggleLanguage(ctx)
	v, ok, err := store.Get(ctx, modifier.LanguageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ru", v)
}

func TestOpenOrMemoryKeepsWorkingStore(t *testing.T) {
	store, err := OpenOrMemory(context.Background(), BackendTOML, filepath.Join(t.TempDir(), "prefs.toml"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.IsType(t, &FileStore{}, store)
}
