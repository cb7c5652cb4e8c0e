package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Chroma CLI.
type Config struct {
	APIBaseURL        string
	DatabasePath      string
	RequestTimeout    time.Duration
	MaxRetries        int
	LogLevel          string
	LogFormat         string
	UploadConcurrency int
}

// LoadDefaults populates c with defaults for a local development server.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "chroma.db"
	c.RequestTimeout = 30 * time.Second
	c.MaxRetries = 3
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.UploadConcurrency = 4
}

// LoadConfig applies defaults, then the JSON file, then flags taken from
// os.Args. It panics on malformed input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
