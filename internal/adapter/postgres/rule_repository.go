package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// RuleRepository implements port.RuleRepository using pgxpool. Save
// validates before writing, so the table never holds a rule that
// violates the threshold ordering.
type RuleRepository struct {
	pool *pgxpool.Pool
}

// NewRuleRepository returns a new repository instance.
func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

const ruleColumns = `id, account_id, campaign_id, enabled,
	roas_scale_up_aggressive, roas_scale_up, roas_scale_down, roas_pause,
	ctr_threshold, min_impressions,
	aggressive_up_multiplier, up_multiplier, down_multiplier,
	min_daily_budget, max_daily_budget,
	require_approval_threshold, auto_approve_up_to, require_approval_on_pause,
	created_at, updated_at`

// Save validates and upserts the rule. The (account_id, campaign_id)
// pair is unique with NULLS NOT DISTINCT, so one account-level rule and
// one rule per campaign can exist at a time.
func (r *RuleRepository) Save(ctx context.Context, rule *domain.ScalingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO scaling_rules
		(id, account_id, campaign_id, enabled,
		 roas_scale_up_aggressive, roas_scale_up, roas_scale_down, roas_pause,
		 ctr_threshold, min_impressions,
		 aggressive_up_multiplier, up_multiplier, down_multiplier,
		 min_daily_budget, max_daily_budget,
		 require_approval_threshold, auto_approve_up_to, require_approval_on_pause,
		 created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (account_id, campaign_id) DO UPDATE SET
		 enabled = EXCLUDED.enabled,
		 roas_scale_up_aggressive = EXCLUDED.roas_scale_up_aggressive,
		 roas_scale_up = EXCLUDED.roas_scale_up,
		 roas_scale_down = EXCLUDED.roas_scale_down,
		 roas_pause = EXCLUDED.roas_pause,
		 ctr_threshold = EXCLUDED.ctr_threshold,
		 min_impressions = EXCLUDED.min_impressions,
		 aggressive_up_multiplier = EXCLUDED.aggressive_up_multiplier,
		 up_multiplier = EXCLUDED.up_multiplier,
		 down_multiplier = EXCLUDED.down_multiplier,
		 min_daily_budget = EXCLUDED.min_daily_budget,
		 max_daily_budget = EXCLUDED.max_daily_budget,
		 require_approval_threshold = EXCLUDED.require_approval_threshold,
		 auto_approve_up_to = EXCLUDED.auto_approve_up_to,
		 require_approval_on_pause = EXCLUDED.require_approval_on_pause,
		 updated_at = EXCLUDED.updated_at`,
		rule.ID, rule.AccountID, rule.CampaignID, rule.Enabled,
		rule.ROASScaleUpAggressive, rule.ROASScaleUp, rule.ROASScaleDown, rule.ROASPause,
		rule.CTRThreshold, rule.MinImpressions,
		rule.AggressiveUpMultiplier, rule.UpMultiplier, rule.DownMultiplier,
		rule.MinDailyBudgetCents, rule.MaxDailyBudgetCents,
		rule.RequireApprovalThresholdCents, rule.AutoApproveUpToCents, rule.RequireApprovalOnPause,
		rule.CreatedAt, rule.UpdatedAt)
	return err
}

// FindForCampaign returns the campaign-specific rule, or nil.
func (r *RuleRepository) FindForCampaign(ctx context.Context, accountID, campaignID string) (*domain.ScalingRule, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ruleColumns+` FROM scaling_rules
		 WHERE account_id = $1 AND campaign_id = $2`, accountID, campaignID)
	return scanRule(row)
}

// FindForAccount returns the account-level rule, or nil.
func (r *RuleRepository) FindForAccount(ctx context.Context, accountID string) (*domain.ScalingRule, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ruleColumns+` FROM scaling_rules
		 WHERE account_id = $1 AND campaign_id IS NULL`, accountID)
	return scanRule(row)
}

func scanRule(row pgx.Row) (*domain.ScalingRule, error) {
	var rule domain.ScalingRule
	err := row.Scan(
		&rule.ID, &rule.AccountID, &rule.CampaignID, &rule.Enabled,
		&rule.ROASScaleUpAggressive, &rule.ROASScaleUp, &rule.ROASScaleDown, &rule.ROASPause,
		&rule.CTRThreshold, &rule.MinImpressions,
		&rule.AggressiveUpMultiplier, &rule.UpMultiplier, &rule.DownMultiplier,
		&rule.MinDailyBudgetCents, &rule.MaxDailyBudgetCents,
		&rule.RequireApprovalThresholdCents, &rule.AutoApproveUpToCents, &rule.RequireApprovalOnPause,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
