package usecase

import (
	"testing"

	"adpilot/internal/core/domain"
)

func TestCalcBudget(t *testing.T) {
	maxBudget := int64(150_000)
	r := domain.DefaultRule("acct-1")
	r.MinDailyBudgetCents = 10_000
	r.MaxDailyBudgetCents = &maxBudget

	cases := []struct {
		name       string
		before     int64
		multiplier float64
		want       int64
	}{
		{"scale up", 100_000, 1.2, 120_000},
		{"aggressive clamped to max", 120_000, 1.5, 150_000},
		{"scale down", 100_000, 0.8, 80_000},
		{"scale down clamped to min", 11_000, 0.8, 10_000},
		{"pause keeps budget", 100_000, 0.0, 100_000},
		{"maintain keeps budget", 100_000, 1.0, 100_000},
		{"rounds to nearest cent", 10_001, 1.2, 12_001}, // 12001.2 -> 12001
		{"rounds half up", 10_001, 1.5, 15_002},         // 15001.5 -> 15002
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalcBudget(tc.before, tc.multiplier, r); got != tc.want {
				t.Fatalf("CalcBudget(%d, %v) = %d, want %d", tc.before, tc.multiplier, got, tc.want)
			}
		})
	}
}

// Multiplier 0 and 1 bypass the clamp entirely: a paused or maintained
// campaign below the configured floor keeps its current budget.
func TestCalcBudgetIdentityBypassesClamp(t *testing.T) {
	r := domain.DefaultRule("acct-1")
	r.MinDailyBudgetCents = 50_000

	if got := CalcBudget(2_000, 0.0, r); got != 2_000 {
		t.Fatalf("pause raised the budget to %d", got)
	}
	if got := CalcBudget(2_000, 1.0, r); got != 2_000 {
		t.Fatalf("maintain raised the budget to %d", got)
	}
}

func TestCalcBudgetUnboundedAbove(t *testing.T) {
	r := domain.DefaultRule("acct-1")
	r.MaxDailyBudgetCents = nil

	if got := CalcBudget(10_000_000, 1.5, r); got != 15_000_000 {
		t.Fatalf("got %d, want 15000000", got)
	}
}
