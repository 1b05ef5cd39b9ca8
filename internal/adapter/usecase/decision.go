package usecase

import (
	"fmt"

	"adpilot/internal/core/domain"
)

// Decision is the outcome of evaluating one campaign's metrics against a
// rule: what to do, by how much, and why.
type Decision struct {
	ActionType domain.ActionType
	Multiplier float64
	Reasoning  string
}

// Decide evaluates metrics against a rule. Pure and deterministic: an
// ordered guard chain where the first matching guard wins.
//
// The insufficient-data guard comes first — below MinImpressions the
// engine deliberately withholds action no matter how good or bad the
// ratios look. At roas == ROASPause the decision is PAUSE, not
// SCALE_DOWN: the boundary belongs to the conservative action.
func Decide(m domain.CampaignMetrics, r domain.ScalingRule) Decision {
	if m.Impressions < r.MinImpressions {
		return Decision{
			ActionType: domain.ActionMaintain,
			Multiplier: 1.0,
			Reasoning:  fmt.Sprintf("insufficient data: %d impressions < %d threshold", m.Impressions, r.MinImpressions),
		}
	}

	roas := m.ROAS()
	ctr := m.CTR()

	switch {
	case roas >= r.ROASScaleUpAggressive && ctr >= r.CTRThreshold:
		return Decision{
			ActionType: domain.ActionScaleUpAggressive,
			Multiplier: r.AggressiveUpMultiplier,
			Reasoning:  fmt.Sprintf("roas %.2f >= %.2f and ctr %.4f >= %.4f", roas, r.ROASScaleUpAggressive, ctr, r.CTRThreshold),
		}
	case roas >= r.ROASScaleUp:
		return Decision{
			ActionType: domain.ActionScaleUp,
			Multiplier: r.UpMultiplier,
			Reasoning:  fmt.Sprintf("roas %.2f >= %.2f", roas, r.ROASScaleUp),
		}
	case roas <= r.ROASPause:
		return Decision{
			ActionType: domain.ActionPause,
			Multiplier: 0.0,
			Reasoning:  fmt.Sprintf("roas %.2f <= pause threshold %.2f", roas, r.ROASPause),
		}
	case roas < r.ROASScaleDown:
		return Decision{
			ActionType: domain.ActionScaleDown,
			Multiplier: r.DownMultiplier,
			Reasoning:  fmt.Sprintf("roas %.2f < %.2f", roas, r.ROASScaleDown),
		}
	default:
		return Decision{
			ActionType: domain.ActionMaintain,
			Multiplier: 1.0,
			Reasoning:  fmt.Sprintf("roas %.2f in holding range [%.2f, %.2f)", roas, r.ROASScaleDown, r.ROASScaleUp),
		}
	}
}
