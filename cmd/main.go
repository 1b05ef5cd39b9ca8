package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adpilot/internal/adapter/adplatform"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/notifier"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/scheduler"
)

// main is the entry point of the adpilot daemon. It loads configuration,
// optionally runs database migrations, initializes the database pool and
// repositories, schedules the periodic evaluation cycle, then starts the
// HTTP server. On receiving a termination signal it gracefully shuts
// down the scheduler and server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	svc := usecase.NewOrchestrator(usecase.Deps{
		Metrics:     postgres.NewMetricsProvider(pool),
		Campaigns:   postgres.NewCampaignRepository(pool),
		Actions:     postgres.NewActionRepository(pool),
		Rules:       postgres.NewRuleRepository(pool),
		Platform:    adplatform.New(cfg.Platform),
		Notifier:    notifier.NewWebhook(cfg.Notifier),
		Logger:      logger,
		Workers:     cfg.Scaler.Workers,
		CallTimeout: cfg.Scaler.CallTimeout,
	})

	runner := scheduler.New(logger, ctx)
	if cfg.Scaler.Enabled {
		_, err = runner.Add(cfg.Scaler.CronSpec, func(jobCtx context.Context) {
			if _, cycleErr := svc.RunCycle(jobCtx, port.CycleOptions{}); cycleErr != nil {
				logger.Error("scheduled cycle error", slog.Any("error", cycleErr))
			}
		})
		if err != nil {
			logger.Error("invalid cron spec", slog.Any("error", err))
			os.Exit(1)
		}
		runner.Start()
		defer runner.Stop()
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
