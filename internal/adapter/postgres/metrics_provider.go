package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// MetricsProvider implements port.MetricsProvider by aggregating hourly
// rows written by the (external) ingestion pipeline. A campaign with no
// rows in the trailing window yields port.ErrDataUnavailable.
type MetricsProvider struct {
	pool *pgxpool.Pool
}

// NewMetricsProvider returns a new provider instance.
func NewMetricsProvider(pool *pgxpool.Pool) *MetricsProvider {
	return &MetricsProvider{pool: pool}
}

// Get24hMetrics aggregates the trailing 24h window for the campaign and
// attaches its current daily budget.
func (p *MetricsProvider) Get24hMetrics(ctx context.Context, campaignID string) (*domain.CampaignMetrics, error) {
	m := domain.CampaignMetrics{
		CampaignID:  campaignID,
		WindowHours: domain.MetricsWindowHours,
		HourOfDay:   time.Now().UTC().Hour(),
	}

	var hourCount int64
	err := p.pool.QueryRow(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(impressions), 0),
			COALESCE(SUM(clicks), 0),
			COALESCE(SUM(conversions), 0),
			COALESCE(SUM(spend), 0),
			COALESCE(SUM(revenue), 0)
		FROM campaign_metrics_hourly
		WHERE campaign_id = $1 AND hour >= now() - interval '24 hours'`, campaignID).
		Scan(&hourCount, &m.Impressions, &m.Clicks, &m.Conversions, &m.SpendCents, &m.RevenueCents)
	if err != nil {
		return nil, err
	}
	if hourCount == 0 {
		return nil, port.ErrDataUnavailable
	}

	err = p.pool.QueryRow(ctx, `SELECT daily_budget FROM campaigns WHERE id = $1`, campaignID).
		Scan(&m.DailyBudgetCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrDataUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
