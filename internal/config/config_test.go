package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/contactlabels/android/contacts"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contactlabels.yaml")
	be.Err(t, os.WriteFile(path, []byte(body), 0o644), nil)
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	be.Err(t, err, nil)
	be.Equal(t, *cfg, DefaultConfig())

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Output.Format, FormatText)

	cfg, err = Load(writeFile(t, "# only a comment\n"))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Log.Level, "info")
	be.Err(t, cfg.Validate(), nil)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
output:
  format: yaml
scan:
  db_path: /tmp/contacts2.db
  kinds: [phone, Email]
  limit: 10
`)
	cfg, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Log.Level, "debug")
	be.Equal(t, cfg.Output.Format, FormatYAML)
	be.Equal(t, cfg.Scan.DBPath, "/tmp/contacts2.db")
	be.Equal(t, cfg.Scan.Limit, 10)
	be.Err(t, cfg.Validate(), nil)

	kinds, err := cfg.ScanKinds()
	be.Err(t, err, nil)
	be.Equal(t, len(kinds), 2)
	be.True(t, kinds[0] == contacts.Phone)
	be.True(t, kinds[1] == contacts.Email)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeFile(t, "output:\n  colour: red\n"))
	be.Err(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPath, "/data/contacts2.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvFormat, "json")

	cfg, err := Load(writeFile(t, "output:\n  format: yaml\n"))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Scan.DBPath, "/data/contacts2.db")
	be.Equal(t, cfg.Log.Level, "warn")
	be.Equal(t, cfg.Output.Format, FormatJSON)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, false},
		{"bad kind", func(c *Config) { c.Scan.Kinds = []string{"im"} }, false},
		{"negative limit", func(c *Config) { c.Scan.Limit = -1 }, false},
		{"all kinds", func(c *Config) { c.Scan.Kinds = []string{"phone", "email", "postal"} }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			be.Equal(t, err == nil, tc.ok)
		})
	}
}
