// Command ringdownd serves the built-in ringdown catalogue and the custom
// derivation endpoint over HTTP, with Prometheus metrics.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/ringdown-toolkit/internal/adapter/http"
	"github.com/couchcryptid/ringdown-toolkit/internal/config"
	"github.com/couchcryptid/ringdown-toolkit/internal/domain"
	"github.com/couchcryptid/ringdown-toolkit/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stderr)
	metrics := observability.NewMetrics()

	catalogue := domain.LoadCatalogue()
	srv := httpadapter.NewServer(cfg.HTTPAddr, catalogue, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.ServerUp.Set(1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("catalogue server started", "addr", cfg.HTTPAddr, "events", catalogue.Len())

	<-ctx.Done()
	logger.Info("shutting down")
	metrics.ServerUp.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
