package config

import (
	"flag"
	"time"

	"github.com/svsticky/chroma/internal/flagx"
)

// parseFlags overlays cfg with the flags this package owns. Other flags on
// the command line are ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("chroma", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Chroma API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.MaxRetries, "r", cfg.MaxRetries, "maximum retries while rate limited")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
