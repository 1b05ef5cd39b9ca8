// Package notifier delivers approval notifications. The webhook flavour
// posts pending actions to a configured URL; with no URL configured it
// degrades to a no-op so the orchestrator needs no special casing.
package notifier

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
)

// Webhook implements port.ApprovalNotifier over HTTP.
type Webhook struct {
	http *resty.Client
	url  string
}

// NewWebhook creates a notifier from configuration.
func NewWebhook(cfg configs.Notifier) *Webhook {
	return &Webhook{
		http: resty.New().SetTimeout(cfg.Timeout),
		url:  cfg.WebhookURL,
	}
}

// NotifyPending posts a compact summary of the action awaiting approval.
// Delivery is best-effort; callers log the error and move on.
func (w *Webhook) NotifyPending(ctx context.Context, action *domain.ScalingAction) error {
	if w.url == "" {
		return nil
	}
	payload := map[string]any{
		"action_id":     action.ID.String(),
		"account_id":    action.AccountID,
		"campaign_id":   action.CampaignID,
		"action_type":   action.ActionType,
		"budget_before": action.BudgetBeforeCents,
		"budget_after":  action.BudgetAfterCents,
		"change_pct":    action.ChangePct,
		"reasoning":     action.Reasoning,
	}
	resp, err := w.http.R().SetContext(ctx).SetBody(payload).Post(w.url)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}
	return nil
}
