package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// ApprovalNotifier announces actions awaiting human sign-off. Calls are
// fire-and-forget: the orchestrator logs failures and never fails a
// cycle over a missed notification.
type ApprovalNotifier interface {
	NotifyPending(ctx context.Context, action *domain.ScalingAction) error
}
