// Package config handles configuration for the session gateway,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the gateway.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - APIBaseURL: base URL of the upstream Chroma API.
//   - CookieSecret: HMAC secret for the signed role cookie (HS256). Empty
//     means a random secret per process.
//   - RoleCookieTTL: lifetime of the role cookie.
//   - RequestTimeout: timeout of upstream calls.
//   - MaxRetries: retries of a rate limited session check.
//   - MaxRetryWait: longest Retry-After delay waited for inside a request.
type Config struct {
	ListenAddr      string
	APIBaseURL      string
	CookieSecret    string
	RoleCookieTTL   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxRetries      int
	MaxRetryWait    time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.APIBaseURL = "http://localhost:8000"
	c.RoleCookieTTL = 24 * time.Hour
	c.RequestTimeout = 30 * time.Second
	c.ShutdownTimeout = 10 * time.Second
	c.MaxRetries = 3
	c.MaxRetryWait = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
