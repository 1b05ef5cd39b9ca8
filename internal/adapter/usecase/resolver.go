package usecase

import (
	"context"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// RuleResolver finds the effective scaling rule for a campaign. The
// resolution order is: enabled campaign-specific rule, then enabled
// account-level rule, then the synthesized built-in default. The
// default is persisted only when the account has no stored rule at all,
// so later cycles and operators see the same numbers; a disabled stored
// rule is left untouched. Resolve never returns nothing.
type RuleResolver struct {
	rules port.RuleRepository
}

// NewRuleResolver creates a resolver backed by the given repository.
func NewRuleResolver(rules port.RuleRepository) *RuleResolver {
	return &RuleResolver{rules: rules}
}

// Resolve returns the effective rule for (accountID, campaignID).
func (r *RuleResolver) Resolve(ctx context.Context, accountID, campaignID string) (*domain.ScalingRule, error) {
	rule, err := r.rules.FindForCampaign(ctx, accountID, campaignID)
	if err != nil {
		return nil, err
	}
	if rule != nil && rule.Enabled {
		return rule, nil
	}

	accountRule, err := r.rules.FindForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if accountRule != nil && accountRule.Enabled {
		return accountRule, nil
	}

	def := domain.DefaultRule(accountID)
	if accountRule == nil {
		// Saving through the upsert would clobber a disabled stored
		// rule, so the default is persisted only when nothing exists.
		if err = r.rules.Save(ctx, &def); err != nil {
			return nil, err
		}
	}
	return &def, nil
}
