package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
)

// CycleOptions parameterise one evaluation cycle. An empty AccountID
// evaluates every account. DryRun runs the full decide/budget/gate
// pipeline without persisting anything or touching the ad platform.
type CycleOptions struct {
	AccountID string
	DryRun    bool
}

// DecisionSummary is one campaign's outcome within a cycle report.
type DecisionSummary struct {
	CampaignID        string            `json:"campaign_id"`
	ActionType        domain.ActionType `json:"action_type"`
	Multiplier        float64           `json:"multiplier"`
	BudgetBeforeCents int64             `json:"budget_before_cents"`
	BudgetAfterCents  int64             `json:"budget_after_cents"`
	RequiresApproval  bool              `json:"requires_approval"`
	Reasoning         string            `json:"reasoning"`
}

// CycleReport summarises one evaluation cycle. Every eligible campaign
// lands in exactly one counter: no decision is silently dropped.
type CycleReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DryRun     bool      `json:"dry_run"`

	Evaluated  int `json:"evaluated"`
	Skipped    int `json:"skipped"`
	Maintained int `json:"maintained"`
	Created    int `json:"created"`
	Executed   int `json:"executed"`
	Failed     int `json:"failed"`

	Decisions []DecisionSummary `json:"decisions"`
}

// ScalerUseCase is the inbound port driving the budget autoscaling loop.
// Mock implementations can be generated from this interface for testing.
type ScalerUseCase interface {
	// RunCycle evaluates all eligible campaigns once.
	RunCycle(ctx context.Context, opts CycleOptions) (*CycleReport, error)
	// Approve transitions a PENDING action to APPROVED and executes it.
	// Approving an already APPROVED or EXECUTED action is a no-op.
	Approve(ctx context.Context, id uuid.UUID, approver string) (*domain.ScalingAction, error)
	// Reject transitions a PENDING action to REJECTED.
	Reject(ctx context.Context, id uuid.UUID, by, reason string) (*domain.ScalingAction, error)
	// ListActions returns audit records matching the filter.
	ListActions(ctx context.Context, filter ActionFilter) ([]domain.ScalingAction, error)
	// SaveRule validates and persists a scaling rule.
	SaveRule(ctx context.Context, rule *domain.ScalingRule) error
}
