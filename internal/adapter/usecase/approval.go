package usecase

import "adpilot/internal/core/domain"

// NeedsApproval decides whether a computed change requires human
// sign-off. Pure function, no side effects.
//
// PAUSE and REACTIVATE bypass the budget-size checks: PAUSE only reduces
// risk and needs approval only when the rule says so, while REACTIVATE
// always requires approval. For budget changes, approval is required
// when the new budget exceeds the absolute threshold or the increase
// exceeds the auto-approve allowance. The result is monotonic
// non-decreasing in the new budget for fixed thresholds.
func NeedsApproval(actionType domain.ActionType, beforeCents, afterCents int64, r domain.ScalingRule) bool {
	switch actionType {
	case domain.ActionReactivate:
		return true
	case domain.ActionPause:
		return r.RequireApprovalOnPause
	}
	if afterCents > r.RequireApprovalThresholdCents {
		return true
	}
	return afterCents-beforeCents > r.AutoApproveUpToCents
}
