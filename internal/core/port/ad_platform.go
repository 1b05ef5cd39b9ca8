package port

import (
	"context"
	"fmt"
)

// ExecErrorKind classifies ad-platform call failures so callers can
// branch on an enumerated outcome instead of matching error strings.
type ExecErrorKind string

const (
	ExecTimeout     ExecErrorKind = "timeout"
	ExecAuth        ExecErrorKind = "auth"
	ExecRateLimited ExecErrorKind = "rate_limited"
	ExecNotFound    ExecErrorKind = "not_found"
	ExecOther       ExecErrorKind = "other"
)

// ExecutionError wraps an ad-platform failure with its kind. Any kind
// results in a FAILED action; there is no automatic retry.
type ExecutionError struct {
	Kind    ExecErrorKind
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("ad platform %s: %s", e.Kind, e.Message)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// AdPlatformClient applies budget decisions against the external ad
// platform. UpdateBudget must be idempotent when called twice with the
// same value.
type AdPlatformClient interface {
	Pause(ctx context.Context, campaignID string) error
	Activate(ctx context.Context, campaignID string) error
	UpdateBudget(ctx context.Context, campaignID string, budgetCents int64) error
}
