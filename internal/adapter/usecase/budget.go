package usecase

import (
	"github.com/shopspring/decimal"

	"adpilot/internal/core/domain"
)

// CalcBudget applies a decision multiplier to the current daily budget
// and clamps the result to the rule's bounds. Budgets are integer cents;
// the multiply-and-round happens in decimal arithmetic so cent rounding
// is exact.
//
// A multiplier of 0 (PAUSE) returns the budget unchanged: PAUSE is a
// state signal to the executor, not a budget-zeroing operation, so a
// later REACTIVATE restores the exact prior value. A multiplier of 1
// also returns the budget unchanged, bypassing the clamp.
func CalcBudget(beforeCents int64, multiplier float64, r domain.ScalingRule) int64 {
	if multiplier == 0 || multiplier == 1 {
		return beforeCents
	}
	after := decimal.NewFromInt(beforeCents).
		Mul(decimal.NewFromFloat(multiplier)).
		Round(0).
		IntPart()
	if after < r.MinDailyBudgetCents {
		after = r.MinDailyBudgetCents
	}
	if r.MaxDailyBudgetCents != nil && after > *r.MaxDailyBudgetCents {
		after = *r.MaxDailyBudgetCents
	}
	return after
}
