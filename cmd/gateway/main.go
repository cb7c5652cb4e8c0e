package main

import (
	"context"
	"log"
	"os"

	"github.com/svsticky/chroma/internal/buildinfo"
	"github.com/svsticky/chroma/internal/gateway"
	"github.com/svsticky/chroma/internal/gateway/config"
	"github.com/svsticky/chroma/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	app, err := gateway.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
