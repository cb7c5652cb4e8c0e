package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/svsticky/chroma/internal/buildinfo"
	"github.com/svsticky/chroma/internal/client/cli"
	"github.com/svsticky/chroma/internal/client/config"
	"github.com/svsticky/chroma/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
