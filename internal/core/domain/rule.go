package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRuleInvalid marks a scaling rule that violates its own invariants.
// Rules are validated at save time so the decision engine never sees an
// invalid one.
var ErrRuleInvalid = errors.New("invalid scaling rule")

// ScalingRule defines thresholds, multipliers and safety bounds for
// autoscaling one account or one campaign. A nil CampaignID means the rule
// applies account-wide. Monetary fields are integer cents.
//
// Threshold ordering must hold:
//
//	ROASScaleUpAggressive >= ROASScaleUp >= ROASScaleDown >= ROASPause
//
// Construct rules through NewScalingRule or validate them with Validate
// before persisting.
type ScalingRule struct {
	ID         uuid.UUID
	AccountID  string
	CampaignID *string
	Enabled    bool

	ROASScaleUpAggressive float64
	ROASScaleUp           float64
	ROASScaleDown         float64
	ROASPause             float64
	CTRThreshold          float64
	MinImpressions        int64

	AggressiveUpMultiplier float64
	UpMultiplier           float64
	DownMultiplier         float64

	MinDailyBudgetCents int64
	MaxDailyBudgetCents *int64

	RequireApprovalThresholdCents int64
	AutoApproveUpToCents          int64
	RequireApprovalOnPause        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewScalingRule assigns an ID and timestamps to r and validates it. The
// zero UUID is replaced; an existing ID is kept so updates keep their
// identity.
func NewScalingRule(r ScalingRule) (ScalingRule, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	if err := r.Validate(); err != nil {
		return ScalingRule{}, err
	}
	return r, nil
}

// Validate checks the threshold ordering and basic sanity of multipliers
// and bounds. All violations are reported wrapped in ErrRuleInvalid.
func (r ScalingRule) Validate() error {
	if r.AccountID == "" {
		return fmt.Errorf("%w: account id is required", ErrRuleInvalid)
	}
	if r.CampaignID != nil && *r.CampaignID == "" {
		return fmt.Errorf("%w: campaign id must be null or non-empty", ErrRuleInvalid)
	}
	if r.ROASScaleUpAggressive < r.ROASScaleUp {
		return fmt.Errorf("%w: roas_scale_up_aggressive %.2f < roas_scale_up %.2f",
			ErrRuleInvalid, r.ROASScaleUpAggressive, r.ROASScaleUp)
	}
	if r.ROASScaleUp < r.ROASScaleDown {
		return fmt.Errorf("%w: roas_scale_up %.2f < roas_scale_down %.2f",
			ErrRuleInvalid, r.ROASScaleUp, r.ROASScaleDown)
	}
	if r.ROASScaleDown < r.ROASPause {
		return fmt.Errorf("%w: roas_scale_down %.2f < roas_pause %.2f",
			ErrRuleInvalid, r.ROASScaleDown, r.ROASPause)
	}
	if r.CTRThreshold < 0 || r.CTRThreshold > 1 {
		return fmt.Errorf("%w: ctr_threshold %.4f outside [0,1]", ErrRuleInvalid, r.CTRThreshold)
	}
	if r.MinImpressions < 0 {
		return fmt.Errorf("%w: min_impressions must be >= 0", ErrRuleInvalid)
	}
	if r.AggressiveUpMultiplier < 1 || r.UpMultiplier < 1 {
		return fmt.Errorf("%w: scale-up multipliers must be >= 1", ErrRuleInvalid)
	}
	if r.DownMultiplier <= 0 || r.DownMultiplier > 1 {
		return fmt.Errorf("%w: down multiplier %.2f outside (0,1]", ErrRuleInvalid, r.DownMultiplier)
	}
	if r.MinDailyBudgetCents < 0 {
		return fmt.Errorf("%w: min_daily_budget must be >= 0", ErrRuleInvalid)
	}
	if r.MaxDailyBudgetCents != nil && *r.MaxDailyBudgetCents < r.MinDailyBudgetCents {
		return fmt.Errorf("%w: max_daily_budget below min_daily_budget", ErrRuleInvalid)
	}
	if r.RequireApprovalThresholdCents < 0 || r.AutoApproveUpToCents < 0 {
		return fmt.Errorf("%w: approval thresholds must be >= 0", ErrRuleInvalid)
	}
	return nil
}

// IsCampaignScoped reports whether the rule targets a single campaign.
func (r ScalingRule) IsCampaignScoped() bool {
	return r.CampaignID != nil
}

// DefaultRule synthesizes the built-in account-level rule used when no
// stored rule matches a campaign. The numbers are deliberately
// conservative: scaling up needs a ROAS of 3x, the aggressive tier needs
// 4x plus a healthy CTR, and anything below break-even gets paused.
func DefaultRule(accountID string) ScalingRule {
	now := time.Now().UTC()
	return ScalingRule{
		ID:        uuid.New(),
		AccountID: accountID,
		Enabled:   true,

		ROASScaleUpAggressive: 4.0,
		ROASScaleUp:           3.0,
		ROASScaleDown:         1.5,
		ROASPause:             1.0,
		CTRThreshold:          0.03,
		MinImpressions:        1000,

		AggressiveUpMultiplier: 1.5,
		UpMultiplier:           1.2,
		DownMultiplier:         0.8,

		MinDailyBudgetCents:           1_000,     // $10.00 floor
		MaxDailyBudgetCents:           nil,       // unbounded above
		RequireApprovalThresholdCents: 1_000_000, // $10,000.00
		AutoApproveUpToCents:          5_000,     // $50.00 increase

		CreatedAt: now,
		UpdatedAt: now,
	}
}
