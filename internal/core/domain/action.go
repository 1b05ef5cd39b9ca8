package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition marks a state change the action lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid action state transition")

// ActionType enumerates the decisions the engine can produce.
type ActionType string

const (
	ActionScaleUpAggressive ActionType = "SCALE_UP_AGGRESSIVE"
	ActionScaleUp           ActionType = "SCALE_UP"
	ActionMaintain          ActionType = "MAINTAIN"
	ActionScaleDown         ActionType = "SCALE_DOWN"
	ActionPause             ActionType = "PAUSE"
	ActionReactivate        ActionType = "REACTIVATE"
)

// ActionStatus enumerates the lifecycle states of a scaling action.
// PENDING and APPROVED are the only non-terminal states.
type ActionStatus string

const (
	StatusPending  ActionStatus = "PENDING"
	StatusApproved ActionStatus = "APPROVED"
	StatusRejected ActionStatus = "REJECTED"
	StatusExecuted ActionStatus = "EXECUTED"
	StatusFailed   ActionStatus = "FAILED"
)

// Terminal reports whether s admits no further transitions.
func (s ActionStatus) Terminal() bool {
	switch s {
	case StatusExecuted, StatusRejected, StatusFailed:
		return true
	}
	return false
}

// ScalingAction is one audited budget decision for one campaign. Rows are
// append-and-mutate only, never deleted: the table is the audit trail.
// At most one non-terminal action may exist per campaign at any time.
type ScalingAction struct {
	ID         uuid.UUID
	AccountID  string
	CampaignID string

	ActionType ActionType
	Status     ActionStatus

	BudgetBeforeCents int64
	BudgetAfterCents  int64
	ChangePct         float64
	Multiplier        float64

	Metrics   CampaignMetrics
	Reasoning string

	RequiresApproval bool
	Approver         *string
	ApprovedAt       *time.Time
	ReviewNote       *string

	ExecutedAt *time.Time
	Error      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewScalingAction builds a PENDING action for the given decision. The
// change percentage is derived from the before/after budgets; a zero
// before-budget yields 0 to avoid a division blowup.
func NewScalingAction(accountID string, m CampaignMetrics, actionType ActionType, multiplier float64, beforeCents, afterCents int64, reasoning string, requiresApproval bool) *ScalingAction {
	now := time.Now().UTC()
	changePct := 0.0
	if beforeCents != 0 {
		changePct = float64(afterCents-beforeCents) / float64(beforeCents) * 100
	}
	return &ScalingAction{
		ID:                uuid.New(),
		AccountID:         accountID,
		CampaignID:        m.CampaignID,
		ActionType:        actionType,
		Status:            StatusPending,
		BudgetBeforeCents: beforeCents,
		BudgetAfterCents:  afterCents,
		ChangePct:         changePct,
		Multiplier:        multiplier,
		Metrics:           m,
		Reasoning:         reasoning,
		RequiresApproval:  requiresApproval,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Approve transitions PENDING -> APPROVED, recording who signed off.
func (a *ScalingAction) Approve(by string) error {
	if a.Status != StatusPending {
		return fmt.Errorf("%w: approve from %s", ErrInvalidTransition, a.Status)
	}
	now := time.Now().UTC()
	a.Status = StatusApproved
	a.Approver = &by
	a.ApprovedAt = &now
	a.UpdatedAt = now
	return nil
}

// Reject transitions PENDING -> REJECTED with an optional reason.
func (a *ScalingAction) Reject(by, reason string) error {
	if a.Status != StatusPending {
		return fmt.Errorf("%w: reject from %s", ErrInvalidTransition, a.Status)
	}
	now := time.Now().UTC()
	a.Status = StatusRejected
	a.Approver = &by
	if reason != "" {
		a.ReviewNote = &reason
	}
	a.UpdatedAt = now
	return nil
}

// MarkExecuted transitions APPROVED -> EXECUTED.
func (a *ScalingAction) MarkExecuted() error {
	if a.Status != StatusApproved {
		return fmt.Errorf("%w: execute from %s", ErrInvalidTransition, a.Status)
	}
	now := time.Now().UTC()
	a.Status = StatusExecuted
	a.ExecutedAt = &now
	a.UpdatedAt = now
	return nil
}

// MarkFailed transitions APPROVED -> FAILED, keeping the platform error
// for inspection. The prior budget is untouched; the next cycle produces
// a fresh decision instead of retrying this one.
func (a *ScalingAction) MarkFailed(errMsg string) error {
	if a.Status != StatusApproved {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, a.Status)
	}
	now := time.Now().UTC()
	a.Status = StatusFailed
	a.Error = &errMsg
	a.UpdatedAt = now
	return nil
}
