package config

import (
	"encoding/json"
	"os"

	"github.com/svsticky/chroma/internal/flagx"
	"github.com/svsticky/chroma/internal/timex"
)

// jsonConfig mirrors Config for unmarshalling. Absent fields leave the
// current value untouched.
type jsonConfig struct {
	APIBaseURL        *string         `json:"api_base_url"`
	DatabasePath      *string         `json:"database_path"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	MaxRetries        *int            `json:"max_retries"`
	LogLevel          *string         `json:"log_level"`
	LogFormat         *string         `json:"log_format"`
	UploadConcurrency *int            `json:"upload_concurrency"`
}

// parseJSON overlays cfg with the file named by -c or -config, if any.
// It panics when the file cannot be read or parsed.
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

	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.MaxRetries, jc.MaxRetries)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.UploadConcurrency, jc.UploadConcurrency)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
