package domain

import (
	"errors"
	"testing"
)

func validRule() ScalingRule {
	return DefaultRule("acct-1")
}

// TestRuleValidationOrdering ensures every violation of the threshold
// ordering is rejected before a rule can be saved.
func TestRuleValidationOrdering(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ScalingRule)
	}{
		{"aggressive below up", func(r *ScalingRule) { r.ROASScaleUpAggressive = r.ROASScaleUp - 0.1 }},
		{"up below down", func(r *ScalingRule) { r.ROASScaleUp = r.ROASScaleDown - 0.1 }},
		{"down below pause", func(r *ScalingRule) { r.ROASScaleDown = r.ROASPause - 0.1 }},
		{"missing account", func(r *ScalingRule) { r.AccountID = "" }},
		{"ctr above one", func(r *ScalingRule) { r.CTRThreshold = 1.5 }},
		{"negative min impressions", func(r *ScalingRule) { r.MinImpressions = -1 }},
		{"up multiplier below one", func(r *ScalingRule) { r.UpMultiplier = 0.9 }},
		{"down multiplier above one", func(r *ScalingRule) { r.DownMultiplier = 1.1 }},
		{"max budget below min", func(r *ScalingRule) {
			maxB := r.MinDailyBudgetCents - 1
			r.MaxDailyBudgetCents = &maxB
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRule()
			tc.mutate(&r)
			err := r.Validate()
			if !errors.Is(err, ErrRuleInvalid) {
				t.Fatalf("expected ErrRuleInvalid, got %v", err)
			}
		})
	}
}

func TestRuleValidationEqualThresholds(t *testing.T) {
	// Equal neighbours satisfy the ordering; only strict inversions fail.
	r := validRule()
	r.ROASScaleUpAggressive = 2.0
	r.ROASScaleUp = 2.0
	r.ROASScaleDown = 2.0
	r.ROASPause = 2.0
	if err := r.Validate(); err != nil {
		t.Fatalf("equal thresholds should be valid, got %v", err)
	}
}

func TestNewScalingRuleAssignsIdentity(t *testing.T) {
	r := validRule()
	r.ID = [16]byte{}
	r.CreatedAt = r.CreatedAt.AddDate(0, 0, -1)

	got, err := NewScalingRule(r)
	if err != nil {
		t.Fatalf("NewScalingRule error: %v", err)
	}
	if got.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a generated id")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Fatal("updated_at must not precede created_at")
	}
}

func TestDefaultRuleIsValid(t *testing.T) {
	if err := DefaultRule("acct-1").Validate(); err != nil {
		t.Fatalf("default rule must validate, got %v", err)
	}
}
