package port

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

// ErrDataUnavailable signals that no 24h window could be produced for a
// campaign. The orchestrator logs the skip and moves on; it is not a
// failure of the cycle.
var ErrDataUnavailable = errors.New("campaign metrics unavailable")

// MetricsProvider supplies trailing 24h performance snapshots. It is an
// outbound port; the reference implementation aggregates hourly rows in
// PostgreSQL, but the ingestion pipeline behind them is external.
type MetricsProvider interface {
	// Get24hMetrics returns the trailing 24h window for the campaign, or
	// ErrDataUnavailable when no data exists for the window.
	Get24hMetrics(ctx context.Context, campaignID string) (*domain.CampaignMetrics, error)
}
