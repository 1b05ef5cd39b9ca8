package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// RuleRepository persists scaling rules. Save must validate the rule and
// refuse to store one that violates the threshold ordering, so the
// decision engine never reads an invalid rule. Lookups return (nil, nil)
// when no rule matches.
type RuleRepository interface {
	Save(ctx context.Context, rule *domain.ScalingRule) error
	// FindForCampaign returns the campaign-specific rule, enabled or not.
	FindForCampaign(ctx context.Context, accountID, campaignID string) (*domain.ScalingRule, error)
	// FindForAccount returns the account-level rule (campaign_id is null).
	FindForAccount(ctx context.Context, accountID string) (*domain.ScalingRule, error)
}

// CampaignRepository lists the campaigns a cycle should evaluate.
type CampaignRepository interface {
	// ListEligible returns active and paused campaigns, optionally limited
	// to one account. Ended campaigns are never evaluated.
	ListEligible(ctx context.Context, accountID string) ([]domain.CampaignRef, error)
}
