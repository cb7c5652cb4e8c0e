// Package config loads runtime configuration for the Chroma CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Chroma API
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-r int      maximum retries while rate limited
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "https://chroma.svsticky.nl",
//	  "database_path": "chroma.db",
//	  "request_timeout": "30s",
//	  "max_retries": 3,
//	  "log_level": "info",
//	  "log_format": "text",
//	  "upload_concurrency": 4
//	}
package config
