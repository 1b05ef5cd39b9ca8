package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// openActionConstraint is the partial unique index enforcing at most one
// PENDING or APPROVED action per campaign.
const openActionConstraint = "scaling_actions_one_open_per_campaign"

// ActionRepository implements port.ActionRepository using pgxpool for
// PostgreSQL. The non-terminal-action invariant is enforced by a partial
// unique index, so concurrent cycles racing on one campaign cannot both
// insert: the loser gets port.ErrAlreadyPending.
type ActionRepository struct {
	pool *pgxpool.Pool
}

// NewActionRepository returns a new repository instance.
func NewActionRepository(pool *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{pool: pool}
}

const actionColumns = `id, account_id, campaign_id, action_type, status,
	budget_before, budget_after, change_pct, multiplier, metrics,
	reasoning, requires_approval, approver, approved_at, review_note,
	executed_at, error, created_at, updated_at`

// CreateIfNoPending inserts a new action. A unique violation on the
// partial index means another non-terminal action exists for the
// campaign and is mapped to port.ErrAlreadyPending.
func (r *ActionRepository) CreateIfNoPending(ctx context.Context, a *domain.ScalingAction) error {
	metricsJSON, err := json.Marshal(a.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics snapshot: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO scaling_actions
		(id, account_id, campaign_id, action_type, status, budget_before, budget_after,
		 change_pct, multiplier, metrics, reasoning, requires_approval, approver,
		 approved_at, review_note, executed_at, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		a.ID, a.AccountID, a.CampaignID, a.ActionType, a.Status,
		a.BudgetBeforeCents, a.BudgetAfterCents, a.ChangePct, a.Multiplier,
		metricsJSON, a.Reasoning, a.RequiresApproval, a.Approver,
		a.ApprovedAt, a.ReviewNote, a.ExecutedAt, a.Error, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openActionConstraint {
			return port.ErrAlreadyPending
		}
		return err
	}
	return nil
}

// Update writes the mutable lifecycle fields of an existing action.
func (r *ActionRepository) Update(ctx context.Context, a *domain.ScalingAction) error {
	tag, err := r.pool.Exec(ctx, `UPDATE scaling_actions SET
		status = $2, approver = $3, approved_at = $4, review_note = $5,
		executed_at = $6, error = $7, updated_at = $8
		WHERE id = $1`,
		a.ID, a.Status, a.Approver, a.ApprovedAt, a.ReviewNote,
		a.ExecutedAt, a.Error, a.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrActionNotFound
	}
	return nil
}

// FindByID returns the action or port.ErrActionNotFound.
func (r *ActionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ScalingAction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+actionColumns+` FROM scaling_actions WHERE id = $1`, id)
	a, err := scanAction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrActionNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindPending returns the campaign's non-terminal action, or nil.
func (r *ActionRepository) FindPending(ctx context.Context, campaignID string) (*domain.ScalingAction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+actionColumns+` FROM scaling_actions
		 WHERE campaign_id = $1 AND status IN ('PENDING','APPROVED')`, campaignID)
	a, err := scanAction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns actions matching the filter, newest first.
func (r *ActionRepository) List(ctx context.Context, f port.ActionFilter) ([]domain.ScalingAction, error) {
	query := `SELECT ` + actionColumns + ` FROM scaling_actions WHERE 1=1`
	args := []any{}
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		query += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if f.CampaignID != "" {
		args = append(args, f.CampaignID)
		query += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScalingAction, error) {
		a, err := scanAction(row)
		if err != nil {
			return domain.ScalingAction{}, err
		}
		return *a, nil
	})
}

// scanAction scans one scaling_actions row in actionColumns order.
func scanAction(row pgx.Row) (*domain.ScalingAction, error) {
	var (
		a           domain.ScalingAction
		metricsJSON []byte
	)
	err := row.Scan(
		&a.ID, &a.AccountID, &a.CampaignID, &a.ActionType, &a.Status,
		&a.BudgetBeforeCents, &a.BudgetAfterCents, &a.ChangePct, &a.Multiplier,
		&metricsJSON, &a.Reasoning, &a.RequiresApproval, &a.Approver,
		&a.ApprovedAt, &a.ReviewNote, &a.ExecutedAt, &a.Error,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(metricsJSON, &a.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshal metrics snapshot: %w", err)
	}
	return &a, nil
}
