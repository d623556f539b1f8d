package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/bibleread/core/errors"
	"github.com/FocuswithJustin/bibleread/internal/logging"
	"github.com/FocuswithJustin/bibleread/internal/validation"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "reading.json", cfg.Path)
	assert.Equal(t, 1, cfg.QueueCapacity)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"defaults"}, cfg.Sources)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	save := filepath.Join(dir, "progress.yaml")
	path := writeFile(t, "config.yaml", "path: "+save+"\nqueue_capacity: 8\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, save, cfg.Path)
	assert.Equal(t, 8, cfg.QueueCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep their defaults")
	assert.Equal(t, []string{"defaults", path}, cfg.Sources)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, cfg.Path)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(writeFile(t, "bad.yaml", "path: [oops"))
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = Load(writeFile(t, "unknown.yaml", "colour: blue\n"))
	var pe *errors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "config", pe.Format)
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{})
	assert.Equal(t, []string{"defaults"}, cfg.Sources, "empty overrides change nothing")

	cfg.Apply(Overrides{Path: "other.yaml", LogLevel: "ERROR", QueueCapacity: 3})
	assert.Equal(t, "other.yaml", cfg.Path)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 3, cfg.QueueCapacity)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"defaults", "flags"}, cfg.Sources)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		target error
	}{
		{"empty path", func(c *Config) { c.Path = "" }, "path", errors.ErrInvalidInput},
		{"zero capacity", func(c *Config) { c.QueueCapacity = 0 }, "queue_capacity", errors.ErrInvalidInput},
		{"huge capacity", func(c *Config) { c.QueueCapacity = 5000 }, "queue_capacity", errors.ErrInvalidInput},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "log_level", errors.ErrInvalidInput},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format", errors.ErrInvalidInput},
		{"missing parent", func(c *Config) { c.Path = filepath.Join(dir, "no", "reading.json") }, "path", validation.ErrNoParent},
		{"directory", func(c *Config) { c.Path = dir }, "path", validation.ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	lc, err := cfg.Logging(&buf)
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Same(t, &buf, lc.Writer)

	cfg.LogLevel = "loud"
	_, err = cfg.Logging(&buf)
	assert.Error(t, err)
}
