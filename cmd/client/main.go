package main

import (
	"context"
	"os"

	"github.com/mindcase/mindcase/internal/buildinfo"
	"github.com/mindcase/mindcase/internal/client/cli"
	"github.com/mindcase/mindcase/internal/client/config"
	"github.com/mindcase/mindcase/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, os.Stderr)

	cli.NewApp(ctx, cfg, logger).Run(ctx)

}
