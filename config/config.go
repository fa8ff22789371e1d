// Package config loads the session configuration of a parse from TOML or
// YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/soypat/fortparse"
)

// EnvVar names the environment variable holding the configuration file path.
const EnvVar = "FORTOK_CONFIG"

// Config holds the session configuration.
type Config struct {
	// StrictConformance disables nonstandard extensions.
	StrictConformance bool `toml:"strict_conformance" yaml:"strictConformance"`
	// BackslashEscapes enables C-like escapes in character literals.
	BackslashEscapes bool `toml:"backslash_escapes" yaml:"backslashEscapes"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"logLevel"`
	// MaxMessages caps the diagnostics reported per file. Zero means no limit.
	MaxMessages int `toml:"max_messages" yaml:"maxMessages"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads the configuration file at path. The format is picked from the
// file extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by [EnvVar], or returns [Default] when unset.
func LoadFromEnv() (Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.MaxMessages < 0 {
		return errors.New("max_messages must not be negative")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options returns the parse session options.
func (c Config) Options() fortparse.Options {
	return fortparse.Options{
		StrictConformance: c.StrictConformance,
		BackslashEscapes:  c.BackslashEscapes,
	}
}
