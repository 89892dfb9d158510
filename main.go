package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"unrot/config"
	"unrot/di"
	"unrot/job"
	"unrot/rest"
	"unrot/utils/logger"
	"unrot/utils/otel"
)

func main() {
	if err := run(); err != nil {
		slog.Error("unrot exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := otel.InitProvider(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("failed to init otel: %w", err)
	}

	log := logger.InitLogger(logger.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OTelEnabled: cfg.OTel.Enabled,
	})
	log.Info("Starting server", "port", cfg.Server.Port, "store", cfg.Store.Backend)

	container, err := di.NewApplicationComponents(cfg)
	if err != nil {
		return fmt.Errorf("failed to build components: %w", err)
	}
	defer container.Close()

	if err := container.FeedStore.Ping(ctx); err != nil {
		log.Warn("feed store not reachable at startup", "error", err)
	}

	scheduler := job.NewJobScheduler()
	scheduler.Add(job.SeedFeedJob(container.FeedUsecase, cfg.Feed.SeedTimeout))
	if cfg.Feed.RefreshInterval > 0 {
		scheduler.Add(job.RefreshFeedJob(container.FeedUsecase, cfg.Feed.RefreshInterval, cfg.Feed.SeedTimeout))
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}
	stop()
	scheduler.Shutdown()
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error("otel shutdown failed", "error", err)
	}

	log.Info("server stopped")
	return nil
}
