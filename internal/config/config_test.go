package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/folio/pkg/palette"
)

// isolate points config and state lookups at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load(LoadOptions{SkipEnvFile: true})
	require.NoError(t, err)

	assert.Equal(t, "folio", c.App.Name)
	assert.Equal(t, "ctrl+k", c.Palette.ToggleKey)
	assert.Equal(t, []string{"label", "description", "keywords"}, c.Palette.Fields)
	assert.Equal(t, "file", c.Storage.Backend)
	assert.Equal(t, "neo-dark", c.UI.Theme)
	assert.Equal(t, "blue", c.UI.Accent)
	assert.False(t, c.UI.NoColor)
	assert.Equal(t, []string{"aurora", "minimal-light", "neo-dark"}, c.ThemeNames())
	assert.Equal(t, []string{"blue", "green", "orange", "pink", "purple"}, c.AccentNames())
	assert.Equal(t, "#0a0a0f", c.Themes["neo-dark"].Bg)
	assert.Equal(t, "Minimal Light Pro", c.Themes["minimal-light"].Name)
	assert.Equal(t, "#c084fc", c.Accents["purple"].Secondary)

	fields, err := c.MatchFields()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultFields, fields)
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
palette:
  toggle_key: ctrl+p
ui:
  theme: aurora
themes:
  aurora:
    bg: "#000000"
`), 0o644))

	c, err := Load(LoadOptions{ConfigFile: path, SkipEnvFile: true})
	require.NoError(t, err)
	assert.Equal(t, "ctrl+p", c.Palette.ToggleKey)
	assert.Equal(t, "aurora", c.UI.Theme)
	assert.Equal(t, "blue", c.UI.Accent, "unset keys keep their defaults")
	assert.Equal(t, "#000000", c.Themes["aurora"].Bg)
	assert.Equal(t, "#1a1a2e", c.Themes["aurora"].BgSecondary, "maps merge key by key")
	assert.Len(t, c.Themes, 3)
}

func TestLoadTOMLUserFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "folio.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\naccent = \"green\"\n"), 0o644))

	c, err := Load(LoadOptions{ConfigFile: path, SkipEnvFile: true})
	require.NoError(t, err)
	assert.Equal(t, "green", c.UI.Accent)
}

func TestLoadDefaultConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "folio", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  accent: pink\n"), 0o644))

	assert.Equal(t, path, UsedConfigFile(LoadOptions{}))
	c, err := Load(LoadOptions{SkipEnvFile: true})
	require.NoError(t, err)
	assert.Equal(t, "pink", c.UI.Accent)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "nope.yaml"), SkipEnvFile: true})
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_UI_THEME", "minimal-light")
	t.Setenv("FOLIO_UI_NO_COLOR", "true")
	t.Setenv("FOLIO_PALETTE_FIELDS", "label,keywords")
	t.Setenv("FOLIO_STORAGE_BACKEND", "memory")

	c, err := Load(LoadOptions{SkipEnvFile: true})
	require.NoError(t, err)
	assert.Equal(t, "minimal-light", c.UI.Theme)
	assert.True(t, c.UI.NoColor)
	assert.Equal(t, []string{"label", "keywords"}, c.Palette.Fields)
	assert.Equal(t, "memory", c.Storage.Backend)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("FOLIO_UI_ACCENT=orange\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FOLIO_UI_ACCENT") })

	c, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "orange", c.UI.Accent)

	_, err = Load(LoadOptions{EnvFile: filepath.Join(dir, "missing.env")})
	assert.NoError(t, err, "a missing .env file is ignored")
}

func TestLoadOverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_UI_THEME", "minimal-light")
	c, err := Load(LoadOptions{SkipEnvFile: true, Overrides: map[string]string{"ui.theme": "aurora", "storage.backend": "sqlite"}})
	require.NoError(t, err)
	assert.Equal(t, "aurora", c.UI.Theme)
	assert.Equal(t, "sqlite", c.Storage.Backend)
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)
	c, err := Load(LoadOptions{SkipEnvFile: true, Overrides: map[string]string{"ui.theme": "sepia"}})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "sepia")
	assert.Equal(t, "sepia", c.UI.Theme, "the decoded config is still returned")
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load(LoadOptions{SkipEnvFile: true})
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"backend case-insensitive", func(c *Config) { c.Storage.Backend = "SQLite" }, ""},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"unknown field", func(c *Config) { c.Palette.Fields = []string{"label", "icon"} }, "palette.fields"},
		{"empty toggle", func(c *Config) { c.Palette.ToggleKey = " " }, "toggle_key"},
		{"unknown accent", func(c *Config) { c.UI.Accent = "teal" }, "ui.accent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.Palette.Fields = append([]string(nil), base.Palette.Fields...)
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStoragePath(t *testing.T) {
	dir := isolate(t)
	c := Config{Storage: StorageConfig{Backend: "file"}}
	assert.Equal(t, filepath.Join(dir, "state", "folio", "state.json"), c.StoragePath())

	c.Storage.Backend = "sqlite"
	assert.Equal(t, filepath.Join(dir, "state", "folio", "state.db"), c.StoragePath())

	c.Storage.Path = "/var/tmp/x.db"
	assert.Equal(t, "/var/tmp/x.db", c.StoragePath())
}

func TestDownloadsDir(t *testing.T) {
	c := Config{Downloads: DownloadsConfig{Dir: "/tmp/out"}}
	assert.Equal(t, "/tmp/out", c.DownloadsDir())

	c.Downloads.Dir = ""
	assert.NotEmpty(t, c.DownloadsDir())
}

func TestDefaultConfigYAMLIsCopy(t *testing.T) {
	a := DefaultConfigYAML()
	require.NotEmpty(t, a)
	a[0] = '!'
	assert.NotEqual(t, a[0], DefaultConfigYAML()[0])
}
