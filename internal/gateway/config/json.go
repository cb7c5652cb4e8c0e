package config

import (
	"encoding/json"
	"os"

	"github.com/svsticky/chroma/internal/flagx"
	"github.com/svsticky/chroma/internal/timex"
)

// jsonConfig is used only for unmarshalling; durations accept "3s" or
// integer nanoseconds.
type jsonConfig struct {
	ListenAddr      *string         `json:"listen_addr"`
	APIBaseURL      *string         `json:"api_base_url"`
	CookieSecret    *string         `json:"cookie_secret"`
	RoleCookieTTL   *timex.Duration `json:"role_cookie_ttl"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	MaxRetries      *int            `json:"max_retries"`
	MaxRetryWait    *timex.Duration `json:"max_retry_wait"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c or -config, if any.
// It panics on read or unmarshal errors.
func parseJSON(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != nil {
		cfg.ListenAddr = *jc.ListenAddr
	}
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.CookieSecret != nil {
		cfg.CookieSecret = *jc.CookieSecret
	}
	if jc.RoleCookieTTL != nil {
		cfg.RoleCookieTTL = jc.RoleCookieTTL.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.MaxRetries != nil {
		cfg.MaxRetries = *jc.MaxRetries
	}
	if jc.MaxRetryWait != nil {
		cfg.MaxRetryWait = jc.MaxRetryWait.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
