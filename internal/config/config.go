// Package config loads cyclr's configuration from an optional YAML file,
// CYCLR_* environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sadopc/cyclr/internal/cycle"
)

// Keys understood in the config file and as CYCLR_<KEY> variables.
const (
	KeyLocale         = "locale"
	KeyDefaultMinutes = "default_minutes"
	KeyTickInterval   = "tick_interval"
	KeySuggestions    = "suggestions"
	KeyLogFile        = "log_file"
)

const EnvPrefix = "CYCLR"

type Config struct {
	Locale         string
	DefaultMinutes int
	TickInterval   time.Duration
	Suggestions    []string
	LogFile        string
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLocale, "pt-BR")
	v.SetDefault(KeyDefaultMinutes, 0)
	v.SetDefault(KeyTickInterval, time.Second)
	v.SetDefault(KeySuggestions, []string{"Projeto 1", "Projeto 2", "Projeto 3", "Projeto 4"})
	v.SetDefault(KeyLogFile, "")
	return v
}

// DefaultPath returns $XDG_CONFIG_HOME/cyclr/cyclr.yml, falling back to the
// OS user config directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate config directory: %w", err)
		}
	}
	return filepath.Join(dir, "cyclr", "cyclr.yml"), nil
}

// Load reads path into v (a missing file is fine; nothing is written) and
// returns the validated configuration.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := Config{
		Locale:         v.GetString(KeyLocale),
		DefaultMinutes: v.GetInt(KeyDefaultMinutes),
		TickInterval:   v.GetDuration(KeyTickInterval),
		Suggestions:    v.GetStringSlice(KeySuggestions),
		LogFile:        v.GetString(KeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("config %s: must be positive, got %s", KeyTickInterval, c.TickInterval)
	}
	if c.DefaultMinutes != 0 {
		if err := cycle.NewSchema(c.Locale).ValidateMinutes(c.DefaultMinutes); err != nil {
			return fmt.Errorf("config %s: %w", KeyDefaultMinutes, err)
		}
	}
	return nil
}
