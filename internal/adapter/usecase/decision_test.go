package usecase

import (
	"strings"
	"testing"

	"adpilot/internal/core/domain"
)

// metricsFor builds a 24h snapshot with the given ratios. Spend is fixed
// at $1,000 so revenue = roas * spend stays in whole cents.
func metricsFor(impressions int64, ctr, roas float64) domain.CampaignMetrics {
	return domain.CampaignMetrics{
		CampaignID:       "camp-1",
		Impressions:      impressions,
		Clicks:           int64(float64(impressions) * ctr),
		SpendCents:       100_000,
		RevenueCents:     int64(roas * 100_000),
		DailyBudgetCents: 100_000,
		WindowHours:      domain.MetricsWindowHours,
	}
}

func TestDecideGuardChain(t *testing.T) {
	r := domain.DefaultRule("acct-1")

	cases := []struct {
		name       string
		m          domain.CampaignMetrics
		wantType   domain.ActionType
		wantMult   float64
		wantReason string
	}{
		{
			name:       "insufficient data wins over great ratios",
			m:          metricsFor(999, 0.05, 6.0),
			wantType:   domain.ActionMaintain,
			wantMult:   1.0,
			wantReason: "insufficient data",
		},
		{
			name:     "aggressive scale up",
			m:        metricsFor(50_000, 0.035, 4.5),
			wantType: domain.ActionScaleUpAggressive,
			wantMult: 1.5,
		},
		{
			name:     "high roas but weak ctr falls to plain scale up",
			m:        metricsFor(50_000, 0.01, 4.5),
			wantType: domain.ActionScaleUp,
			wantMult: 1.2,
		},
		{
			name:     "scale up at exact threshold",
			m:        metricsFor(50_000, 0.02, 3.0),
			wantType: domain.ActionScaleUp,
			wantMult: 1.2,
		},
		{
			name:     "maintain in holding range",
			m:        metricsFor(50_000, 0.02, 2.0),
			wantType: domain.ActionMaintain,
			wantMult: 1.0,
		},
		{
			name:     "scale down below holding range",
			m:        metricsFor(50_000, 0.02, 1.2),
			wantType: domain.ActionScaleDown,
			wantMult: 0.8,
		},
		{
			name:     "pause boundary is pause not scale down",
			m:        metricsFor(50_000, 0.02, 1.0),
			wantType: domain.ActionPause,
			wantMult: 0.0,
		},
		{
			name:     "pause below break-even",
			m:        metricsFor(50_000, 0.02, 0.8),
			wantType: domain.ActionPause,
			wantMult: 0.0,
		},
		{
			name:     "zero spend means zero roas means pause",
			m:        domain.CampaignMetrics{CampaignID: "camp-1", Impressions: 5_000, Clicks: 100},
			wantType: domain.ActionPause,
			wantMult: 0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.m, r)
			if d.ActionType != tc.wantType {
				t.Fatalf("action = %s, want %s (reasoning: %s)", d.ActionType, tc.wantType, d.Reasoning)
			}
			if d.Multiplier != tc.wantMult {
				t.Fatalf("multiplier = %v, want %v", d.Multiplier, tc.wantMult)
			}
			if d.Reasoning == "" {
				t.Fatal("reasoning must never be empty")
			}
			if tc.wantReason != "" && !strings.Contains(d.Reasoning, tc.wantReason) {
				t.Fatalf("reasoning %q does not mention %q", d.Reasoning, tc.wantReason)
			}
		})
	}
}

// The down threshold is exclusive on its upper side: at exactly
// ROASScaleDown the campaign holds, it does not scale down.
func TestDecideScaleDownBoundary(t *testing.T) {
	r := domain.DefaultRule("acct-1")
	d := Decide(metricsFor(50_000, 0.02, r.ROASScaleDown), r)
	if d.ActionType != domain.ActionMaintain {
		t.Fatalf("roas == scale-down threshold should maintain, got %s", d.ActionType)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	r := domain.DefaultRule("acct-1")
	m := metricsFor(50_000, 0.035, 4.5)
	first := Decide(m, r)
	for i := 0; i < 5; i++ {
		if got := Decide(m, r); got != first {
			t.Fatalf("decision changed across calls: %+v vs %+v", got, first)
		}
	}
}
