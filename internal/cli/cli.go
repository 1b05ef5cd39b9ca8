// Package cli implements the operational command surface: running a
// cycle by hand, approving or rejecting pending actions, and inspecting
// the audit trail. Each command wires the full stack from configuration,
// does its work, and tears down again.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/adapter/adplatform"
	"adpilot/internal/adapter/notifier"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
)

// app bundles everything a command needs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	svc    port.ScalerUseCase
}

// newApp loads configuration, connects to the database, and builds the
// orchestrator. Callers must Close the returned app.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	level := cfg.Log.SlogLevel()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, err
	}

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

	return &app{cfg: cfg, logger: logger, pool: pool, svc: svc}, nil
}

func (a *app) Close() {
	a.pool.Close()
}
