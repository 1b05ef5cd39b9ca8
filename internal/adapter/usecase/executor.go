package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Executor applies approved actions against the ad platform. Every
// platform call is timeout-bounded so one slow call cannot stall the
// cycle. There is no automatic retry: a failed action goes to FAILED and
// the next cycle produces a fresh decision, which bounds retry storms
// against the platform's rate limits.
type Executor struct {
	platform port.AdPlatformClient
	actions  port.ActionRepository
	timeout  time.Duration
	logger   *slog.Logger
}

// NewExecutor creates an executor. A zero timeout defaults to 30s.
func NewExecutor(platform port.AdPlatformClient, actions port.ActionRepository, timeout time.Duration, logger *slog.Logger) *Executor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Executor{platform: platform, actions: actions, timeout: timeout, logger: logger}
}

// Execute dispatches the action to the ad platform and records the
// outcome. Precondition: the action is APPROVED. Executing an already
// EXECUTED action is a no-op with zero platform calls; any other status
// is an invalid transition.
func (e *Executor) Execute(ctx context.Context, action *domain.ScalingAction) error {
	switch action.Status {
	case domain.StatusExecuted:
		return nil
	case domain.StatusApproved:
	default:
		return fmt.Errorf("%w: execute from %s", domain.ErrInvalidTransition, action.Status)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var callErr error
	switch action.ActionType {
	case domain.ActionPause:
		callErr = e.platform.Pause(callCtx, action.CampaignID)
	case domain.ActionReactivate:
		callErr = e.platform.Activate(callCtx, action.CampaignID)
	default:
		if action.Multiplier != 1.0 {
			callErr = e.platform.UpdateBudget(callCtx, action.CampaignID, action.BudgetAfterCents)
		}
	}

	if callErr != nil {
		if err := action.MarkFailed(callErr.Error()); err != nil {
			return err
		}
		if err := e.actions.Update(ctx, action); err != nil {
			e.logger.Error("failed to record action failure",
				slog.String("action_id", action.ID.String()), slog.Any("error", err))
		}
		return callErr
	}

	if err := action.MarkExecuted(); err != nil {
		return err
	}
	return e.actions.Update(ctx, action)
}
