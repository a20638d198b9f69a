// ============================================================================
// unitcal - Einheiten- und Kalenderrechner
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the unitcal command line
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/unitcal/foundation/core/error"
	mdwlog "github.com/msto63/unitcal/foundation/core/log"
)

// EnvConfigPath names the environment variable that points to the config file
const EnvConfigPath = "UNITCAL_CONFIG"

// MaxPrecision is the largest number of fraction digits shown for results
const MaxPrecision = 15

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Units   UnitsConfig   `toml:"units"`
	TUI     TUIConfig     `toml:"tui"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
	// Undecoded lists keys present in the file that unitcal does not know
	Undecoded []string `toml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// DisplayConfig controls number and date output
type DisplayConfig struct {
	Locale    string `toml:"locale"`
	Precision int    `toml:"precision"`
}

// UnitsConfig points to optional unit extensions
type UnitsConfig struct {
	Definitions string `toml:"definitions"`
}

// TUIConfig holds settings of the interactive converter
type TUIConfig struct {
	StartCategory string   `toml:"start_category"`
	StatusTimeout Duration `toml:"status_timeout"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults(toml.MetaData{})
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}

	cfg.Path = path
	cfg.applyDefaults(md)
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from UNITCAL_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Resolve loads path when it is set and falls back to LoadFromEnv otherwise
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	return LoadFromEnv()
}

// DefaultPaths lists the locations searched by LoadFromEnv in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/unitcal.toml",
		"./unitcal.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "unitcal", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration. Precision 0
// is a valid setting, so it is only defaulted when the key is absent.
func (c *Config) applyDefaults(md toml.MetaData) {
	// General
	if c.General.Name == "" {
		c.General.Name = "unitcal"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Display
	if c.Display.Locale == "" {
		c.Display.Locale = "de"
	}
	if !md.IsDefined("display", "precision") {
		c.Display.Precision = 6
	}

	// TUI
	if c.TUI.StartCategory == "" {
		c.TUI.StartCategory = "length"
	}
	if c.TUI.StatusTimeout.Duration == 0 {
		c.TUI.StatusTimeout.Duration = 3 * time.Second
	}
}

// expandEnvVars expands environment variables and ~ in path values
func (c *Config) expandEnvVars() {
	c.Units.Definitions = expandPath(c.Units.Definitions)
}

func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid %s %v: %s", key, value, reason).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "expected trace, debug, info, warn, error or fatal")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "expected json, text or logfmt")
	}
	if _, err := language.Parse(c.Display.Locale); err != nil {
		return invalid("display.locale", c.Display.Locale, "not a BCP 47 language tag")
	}
	if c.Display.Precision < 0 || c.Display.Precision > MaxPrecision {
		return invalid("display.precision", c.Display.Precision, "expected 0..15")
	}
	if c.TUI.StatusTimeout.Duration < 0 {
		return invalid("tui.status_timeout", c.TUI.StatusTimeout.Duration, "must not be negative")
	}
	return nil
}
