package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions controls Load. The zero value loads the default config path
// and ./.env.
type LoadOptions struct {
	// ConfigFile must exist when set. When empty DefaultConfigPath is used
	// if present.
	ConfigFile string
	// EnvFile defaults to ".env"; a missing file is ignored.
	EnvFile string
	// SkipEnvFile disables .env loading.
	SkipEnvFile bool
	// Overrides are applied last, keyed by config key (e.g. "ui.theme").
	Overrides map[string]string
}

// Load merges the layers and validates the result.
func Load(opts LoadOptions) (Config, error) {
	v, err := newViper(opts)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// UsedConfigFile returns the user config file Load would merge, or "".
func UsedConfigFile(opts LoadOptions) string {
	if opts.ConfigFile != "" {
		return opts.ConfigFile
	}
	path := DefaultConfigPath()
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func newViper(opts LoadOptions) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(embeddedDefaultConfig)); err != nil {
		return nil, fmt.Errorf("decode default config: %w", err)
	}

	// The user file is read by its own instance so its extension picks the
	// format (yaml, toml or json).
	if path := UsedConfigFile(opts); path != "" {
		uv := viper.New()
		uv.SetConfigFile(path)
		if err := uv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		if err := v.MergeConfigMap(uv.AllSettings()); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	if !opts.SkipEnvFile {
		envFile := opts.EnvFile
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, val := range opts.Overrides {
		v.Set(key, val)
	}
	return v, nil
}
