// @title Colony Planner API
// @version 1.0
// @description Resolves the production network needed to sustain a target output in a colony crafting game.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/ColonyPlanner_Go/internal/bootstrap"
	"github.com/osse101/ColonyPlanner_Go/internal/catalog"
	"github.com/osse101/ColonyPlanner_Go/internal/config"
	"github.com/osse101/ColonyPlanner_Go/internal/server"
)

func main() {
	// Load reads .env, so it runs before the environment is validated
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}

	for _, warning := range warnings {
		slog.Warn("Environment warning", "warning", warning)
	}

	err = run(cfg)
	_ = logFile.Close()
	if err != nil {
		slog.Error("Planner exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := bootstrap.InitPlanner(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		RequestTimeout: cfg.RequestTimeout,
		TrustedProxies: cfg.TrustedProxies,
	}, components.Planner)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.CatalogWatch {
		watcher := catalog.NewWatcher(cfg.CatalogPath, catalog.ReloadOnChange(components.Planner))
		g.Go(func() error {
			if err := watcher.Watch(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, srv)
		return nil
	})

	return g.Wait()
}
