package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"intmon/config"
	"intmon/di"
	"intmon/driver/monitor_db"
	"intmon/job"
	"intmon/rest"
	"intmon/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting integration monitor")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	log = logger.InitLoggerWith(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := monitor_db.InitDBPool(ctx, cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	scheduler := job.NewJobScheduler()
	scheduler.Add(job.Job{
		Name:     "refresh_all_feeds",
		Interval: cfg.Ingest.RefreshInterval,
		Timeout:  cfg.Ingest.RefreshTimeout,
		Fn: func(jobCtx context.Context) error {
			_, err := container.RefreshFeedUsecase.RefreshAll(jobCtx)
			return err
		},
	})
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down server", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Error starting server", "error", err)
		os.Exit(1)
	}

	scheduler.Shutdown()
	log.Info("Integration monitor stopped")
}
