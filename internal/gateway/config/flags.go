package config

import (
	"flag"
	"time"

	"github.com/svsticky/chroma/internal/flagx"
)

// parseFlags overlays cfg with the flags this package owns.
//
//	-a string   listen address
//	-b string   base URL of the Chroma API
//	-s string   role cookie signing secret
//	-t int      upstream request timeout (seconds)
//	-r int      maximum retries while rate limited
//	-l string   log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "listen address")
	fs.StringVar(&cfg.APIBaseURL, "b", cfg.APIBaseURL, "base URL of the Chroma API")
	fs.StringVar(&cfg.CookieSecret, "s", cfg.CookieSecret, "role cookie signing secret")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "upstream request timeout (in seconds)")
	fs.IntVar(&cfg.MaxRetries, "r", cfg.MaxRetries, "maximum retries while rate limited")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
