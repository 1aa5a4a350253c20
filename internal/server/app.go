// Package server assembles and runs the mindcase development backend: an
// in-memory store behind the JSON/HTTP API the client talks to.
package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindcase/mindcase/internal/logging"
	"github.com/mindcase/mindcase/internal/server/api"
	"github.com/mindcase/mindcase/internal/server/config"
	"github.com/mindcase/mindcase/internal/server/repositories/memory"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *config.Config
	logger logging.Logger
	http   *api.HTTPServer
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	svc := api.NewServices(memory.NewManager(), c)
	return &App{
		config: c,
		logger: logger,
		http:   api.NewHTTPServer(c.Addr, logger, svc),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a termination signal arrives, ctx is cancelled or the
// listener fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "calorie_budget", app.config.CalorieBudget)

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.http.Run(ctx)
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
