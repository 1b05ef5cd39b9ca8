package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListEligible returns active and paused campaigns, optionally limited
// to one account. Paused campaigns stay eligible so they can be
// reactivated when performance recovers.
func (r *CampaignRepository) ListEligible(ctx context.Context, accountID string) ([]domain.CampaignRef, error) {
	query := `SELECT id, account_id, name, status, daily_budget, created_at, updated_at
		FROM campaigns
		WHERE status IN ('active', 'paused')`
	args := []any{}
	if accountID != "" {
		args = append(args, accountID)
		query += " AND account_id = $1"
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRef, error) {
		var c domain.CampaignRef
		err := row.Scan(&c.ID, &c.AccountID, &c.Name, &c.Status, &c.DailyBudgetCents, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}
