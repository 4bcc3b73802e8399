// Package config loads folio's layered configuration: embedded defaults, the
// user's config file, a .env file and FOLIO_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oakwood-commons/folio/internal/store"
	"github.com/oakwood-commons/folio/pkg/palette"
	"github.com/oakwood-commons/folio/pkg/settings"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// EnvPrefix prefixes environment overrides, e.g. FOLIO_UI_THEME.
const EnvPrefix = "FOLIO"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfigYAML returns a copy of the embedded defaults.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Config is the merged configuration.
type Config struct {
	App       AppConfig               `mapstructure:"app" yaml:"app" json:"app" toml:"app"`
	Palette   PaletteConfig           `mapstructure:"palette" yaml:"palette" json:"palette" toml:"palette"`
	Storage   StorageConfig           `mapstructure:"storage" yaml:"storage" json:"storage" toml:"storage"`
	UI        UIConfig                `mapstructure:"ui" yaml:"ui" json:"ui" toml:"ui"`
	Content   ContentConfig           `mapstructure:"content" yaml:"content" json:"content" toml:"content"`
	Downloads DownloadsConfig         `mapstructure:"downloads" yaml:"downloads" json:"downloads" toml:"downloads"`
	Themes    map[string]ThemeColors  `mapstructure:"themes" yaml:"themes" json:"themes" toml:"themes"`
	Accents   map[string]AccentColors `mapstructure:"accents" yaml:"accents" json:"accents" toml:"accents"`
}

type AppConfig struct {
	Name string `mapstructure:"name" yaml:"name" json:"name" toml:"name"`
}

// PaletteConfig configures the command palette.
type PaletteConfig struct {
	ToggleKey string   `mapstructure:"toggle_key" yaml:"toggle_key" json:"toggle_key" toml:"toggle_key"`
	Fields    []string `mapstructure:"fields" yaml:"fields" json:"fields" toml:"fields"`
}

// StorageConfig selects the persistence backend for UI state.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend" json:"backend" toml:"backend"`
	Path    string `mapstructure:"path" yaml:"path" json:"path" toml:"path"`
}

type UIConfig struct {
	Theme   string `mapstructure:"theme" yaml:"theme" json:"theme" toml:"theme"`
	Accent  string `mapstructure:"accent" yaml:"accent" json:"accent" toml:"accent"`
	NoColor bool   `mapstructure:"no_color" yaml:"no_color" json:"no_color" toml:"no_color"`
}

type ContentConfig struct {
	File string `mapstructure:"file" yaml:"file" json:"file" toml:"file"`
}

type DownloadsConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir" toml:"dir"`
}

// ThemeColors is one named color scheme.
type ThemeColors struct {
	Name          string `mapstructure:"name" yaml:"name" json:"name" toml:"name"`
	Bg            string `mapstructure:"bg" yaml:"bg" json:"bg" toml:"bg"`
	BgSecondary   string `mapstructure:"bg_secondary" yaml:"bg_secondary" json:"bg_secondary" toml:"bg_secondary"`
	BgTertiary    string `mapstructure:"bg_tertiary" yaml:"bg_tertiary" json:"bg_tertiary" toml:"bg_tertiary"`
	Text          string `mapstructure:"text" yaml:"text" json:"text" toml:"text"`
	TextSecondary string `mapstructure:"text_secondary" yaml:"text_secondary" json:"text_secondary" toml:"text_secondary"`
	Border        string `mapstructure:"border" yaml:"border" json:"border" toml:"border"`
	BorderLight   string `mapstructure:"border_light" yaml:"border_light" json:"border_light" toml:"border_light"`
}

// AccentColors is one named accent.
type AccentColors struct {
	Primary   string `mapstructure:"primary" yaml:"primary" json:"primary" toml:"primary"`
	Secondary string `mapstructure:"secondary" yaml:"secondary" json:"secondary" toml:"secondary"`
}

// MatchFields parses Palette.Fields.
func (c Config) MatchFields() ([]palette.Field, error) {
	return palette.ParseFields(c.Palette.Fields)
}

// ThemeNames returns the configured theme names, sorted.
func (c Config) ThemeNames() []string {
	return sortedKeys(c.Themes)
}

// AccentNames returns the configured accent names, sorted.
func (c Config) AccentNames() []string {
	return sortedKeys(c.Accents)
}

// Validate reports every problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string
	backendOK := false
	for _, b := range store.Backends() {
		if strings.EqualFold(strings.TrimSpace(c.Storage.Backend), b) {
			backendOK = true
		}
	}
	if !backendOK {
		problems = append(problems, fmt.Sprintf("storage.backend %q is not one of %s", c.Storage.Backend, strings.Join(store.Backends(), ", ")))
	}
	if _, err := c.MatchFields(); err != nil {
		problems = append(problems, fmt.Sprintf("palette.fields: %v", err))
	}
	if strings.TrimSpace(c.Palette.ToggleKey) == "" {
		problems = append(problems, "palette.toggle_key is empty")
	}
	if _, ok := c.Themes[c.UI.Theme]; !ok {
		problems = append(problems, fmt.Sprintf("ui.theme %q is not one of %s", c.UI.Theme, strings.Join(c.ThemeNames(), ", ")))
	}
	if _, ok := c.Accents[c.UI.Accent]; !ok {
		problems = append(problems, fmt.Sprintf("ui.accent %q is not one of %s", c.UI.Accent, strings.Join(c.AccentNames(), ", ")))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// StoragePath returns Storage.Path, or the default state file for the
// configured backend when it is empty.
func (c Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	name := "state.json"
	if strings.EqualFold(c.Storage.Backend, store.BackendSQLite) {
		name = "state.db"
	}
	return filepath.Join(StateDir(), name)
}

// DownloadsDir returns Downloads.Dir, or ~/Downloads.
func (c Config) DownloadsDir() string {
	if c.Downloads.Dir != "" {
		return c.Downloads.Dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Downloads")
	}
	return "."
}

// StateDir is $XDG_STATE_HOME/folio, falling back to ~/.local/state/folio.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, settings.CliBinaryName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", settings.CliBinaryName)
	}
	return filepath.Join(".", "."+settings.CliBinaryName)
}

// DefaultConfigPath is $XDG_CONFIG_HOME/folio/config.yaml, falling back to
// ~/.config/folio/config.yaml. It returns "" when neither can be resolved.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
