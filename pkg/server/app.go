package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SarosAnalytics/pkg/config"
	xhttp "SarosAnalytics/pkg/http"
	applogger "SarosAnalytics/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	httpServer *xhttp.Server
	logger     *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, httpServer *xhttp.Server, logger *applogger.Logger) *App {
	return &App{
		cfg:        cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done or the
// server fails. A bind failure is returned immediately.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server running",
		applogger.String("url", "http://"+a.httpServer.Addr()),
		applogger.String("env", a.cfg.Environment),
		applogger.Bool("metrics", a.cfg.Metrics.Enabled),
	)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err, ok := <-a.httpServer.Wait():
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	return a.shutdown()
}

// Addr is the bound HTTP address once RunContext has started the server.
func (a *App) Addr() string {
	return a.httpServer.Addr()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	// ctx is already cancelled here; give the server its own grace period
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
