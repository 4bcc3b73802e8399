package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/folio/pkg/palette"
)

var (
	_ palette.Storage = (*Memory)(nil)
	_ palette.Storage = (*File)(nil)
	_ palette.Storage = (*SQLite)(nil)
)

func backends(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		BackendMemory: func(t *testing.T) Store { return NewMemory() },
		BackendFile: func(t *testing.T) Store {
			s, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
			require.NoError(t, err)
			return s
		},
		BackendSQLite: func(t *testing.T) Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("portfolio-theme", []byte("aurora")))
			require.NoError(t, s.Set(palette.RecentKey, []byte(`["nav-home"]`)))
			v, ok, err := s.Get("portfolio-theme")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "aurora", string(v))

			require.NoError(t, s.Set("portfolio-theme", []byte("neo-dark")))
			got, err := GetString(s, "portfolio-theme")
			require.NoError(t, err)
			assert.Equal(t, "neo-dark", got)

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"portfolio-theme", palette.RecentKey}, keys)

			require.NoError(t, s.Delete("portfolio-theme"))
			require.NoError(t, s.Delete("portfolio-theme"), "deleting an absent key is not an error")
			_, ok, err = s.Get("portfolio-theme")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, SetString(s, "empty", ""))
			v, ok, err = s.Get("empty")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStoreBacksRecency(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			r := palette.NewRecency(s)
			r.Record("nav-home")
			r.Record("theme-aurora")
			r.Record("nav-home")

			assert.Equal(t, []string{"nav-home", "theme-aurora"}, palette.NewRecency(s).List())
		})
	}
}

func TestFilePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, SetString(s, "portfolio-accent", "pink"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	got, err := GetString(reopened, "portfolio-accent")
	require.NoError(t, err)
	assert.Equal(t, "pink", got)
	assert.Equal(t, path, reopened.Path())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestOpenFileErrors(t *testing.T) {
	_, err := OpenFile("")
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	s, err := OpenFile(empty)
	require.NoError(t, err)
	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.NoError(t, s.LoadError())

	// A directory cannot be read as a file; that is not recoverable.
	_, err = OpenFile(t.TempDir())
	assert.ErrorContains(t, err, "read")
}

func TestOpenFileCorruptStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := OpenFile(path)
	require.NoError(t, err)
	assert.ErrorContains(t, s.LoadError(), "parse")

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Empty(t, palette.NewRecency(s).List())

	bak, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(bak))

	require.NoError(t, SetString(s, "portfolio-theme", "aurora"))
	reopened, err := OpenFile(path)
	require.NoError(t, err)
	assert.NoError(t, reopened.LoadError())
	got, err := GetString(reopened, "portfolio-theme")
	require.NoError(t, err)
	assert.Equal(t, "aurora", got)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, SetString(s, palette.RecentKey, `["a"]`))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := GetString(reopened, palette.RecentKey)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, got)
}

func TestSQLiteInMemory(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, SetString(s, "k", "v"))
	got, err := GetString(s, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'x'
	v, _, _ := m.Get("k")
	assert.Equal(t, "abc", string(v))
	v[0] = 'y'
	v, _, _ = m.Get("k")
	assert.Equal(t, "abc", string(v))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(" FILE ", filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open("", filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open("sqlite", filepath.Join(dir, "c.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.ErrorContains(t, err, "redis")
}
