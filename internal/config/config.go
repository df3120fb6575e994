// Package config handles YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spachava753/contactlabels/android/contacts"
)

// Environment overrides applied after the config file.
const (
	EnvDBPath   = "CONTACTLABELS_DB"
	EnvLogLevel = "CONTACTLABELS_LOG_LEVEL"
	EnvFormat   = "CONTACTLABELS_FORMAT"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all contactlabels configuration.
type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
	Scan   Scan   `yaml:"scan"`
}

// Log holds logger settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	Path  string `yaml:"path"`  // Optional rotated log file
}

// Output holds rendering settings.
type Output struct {
	Format string `yaml:"format"` // "text" | "json" | "yaml"
}

// Scan holds snapshot scan defaults.
type Scan struct {
	DBPath string   `yaml:"db_path"`
	Kinds  []string `yaml:"kinds"`
	Limit  int      `yaml:"limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log:    Log{Level: "info"},
		Output: Output{Format: FormatText},
	}
}

// Load reads the YAML config file at path and applies environment
// overrides. A missing path or file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		default:
			if err := decode(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		cfg.Scan.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Output.Format = v
	}
}

// Validate checks that all config values are within allowed ranges.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log.level %q", c.Log.Level)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: invalid output.format %q", c.Output.Format)
	}
	if _, err := c.ScanKinds(); err != nil {
		return err
	}
	if c.Scan.Limit < 0 {
		return fmt.Errorf("config: scan.limit must be >= 0, got %d", c.Scan.Limit)
	}
	return nil
}

// ScanKinds resolves Scan.Kinds into contacts kinds. An empty list means
// every kind.
func (c *Config) ScanKinds() ([]*contacts.Kind, error) {
	if len(c.Scan.Kinds) == 0 {
		return contacts.Kinds(), nil
	}
	out := make([]*contacts.Kind, 0, len(c.Scan.Kinds))
	for _, name := range c.Scan.Kinds {
		k, ok := contacts.KindByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("config: unknown scan kind %q", name)
		}
		out = append(out, k)
	}
	return out, nil
}
