package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "chroma.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 3, c.MaxRetries)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 4, c.UploadConcurrency)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"chroma"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(c *Config)
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://chroma.example", "-d", "/tmp/s.db", "-t", "5", "-r", "0", "-l", "debug"},
			mutate: func(c *Config) {
				c.APIBaseURL = "https://chroma.example"
				c.DatabasePath = "/tmp/s.db"
				c.RequestTimeout = 5 * time.Second
				c.MaxRetries = 0
				c.LogLevel = "debug"
			},
		},
		{
			name:   "foreign flags are ignored",
			args:   []string{"-x", "1", "-a=http://other", "-c", "cfg.json"},
			mutate: func(c *Config) { c.APIBaseURL = "http://other" },
		},
		{
			name:        "bad timeout",
			args:        []string{"-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			want := defaults()
			tt.mutate(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Run("overlays present fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"api_base_url":       "https://chroma.example",
			"request_timeout":    "10s",
			"upload_concurrency": 8,
		})

		cfg := defaults()
		parseJSON(cfg, []string{"-config", path})

		want := defaults()
		want.APIBaseURL = "https://chroma.example"
		want.RequestTimeout = 10 * time.Second
		want.UploadConcurrency = 8
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("no config flag leaves cfg untouched", func(t *testing.T) {
		cfg := defaults()
		parseJSON(cfg, []string{"-a", "x"})
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		require.Panics(t, func() { parseJSON(defaults(), []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJSON(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}

func TestFlagsOverrideJSON(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	path := writeTempJSON(t, map[string]any{"api_base_url": "https://from-json", "max_retries": 7})
	os.Args = []string{"chroma", "-c", path, "-a", "https://from-flag"}

	cfg := LoadConfig()

	assert.Equal(t, "https://from-flag", cfg.APIBaseURL)
	assert.Equal(t, 7, cfg.MaxRetries)
}
