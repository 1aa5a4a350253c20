package main

import (
	"context"
	"os"

	"github.com/mindcase/mindcase/internal/buildinfo"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/mindcase/mindcase/internal/server"
	"github.com/mindcase/mindcase/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stdout)

	if err := server.NewApp(cfg, logger).Run(ctx); err != nil {
		logger.Error(ctx, "server failed", "error", err)
		os.Exit(1)
	}

}
