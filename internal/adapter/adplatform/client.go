// Package adplatform is the outbound HTTP adapter for the external ad
// platform. It implements port.AdPlatformClient and classifies failures
// into the enumerated execution error kinds.
package adplatform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

// Client talks to the ad platform's management API. All campaign
// mutations on the platform side are idempotent: updating a budget to
// its current value or pausing a paused campaign is accepted.
type Client struct {
	http *resty.Client
}

// New creates a client from configuration.
func New(cfg configs.Platform) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		c.SetAuthToken(cfg.APIKey)
	}
	return &Client{http: c}
}

// Pause pauses campaign delivery. The campaign keeps its budget so it
// can be reactivated at the prior value.
func (c *Client) Pause(ctx context.Context, campaignID string) error {
	return c.post(ctx, fmt.Sprintf("/campaigns/%s/pause", campaignID), nil)
}

// Activate resumes delivery of a paused campaign.
func (c *Client) Activate(ctx context.Context, campaignID string) error {
	return c.post(ctx, fmt.Sprintf("/campaigns/%s/activate", campaignID), nil)
}

// UpdateBudget sets the campaign's daily budget in cents.
func (c *Client) UpdateBudget(ctx context.Context, campaignID string, budgetCents int64) error {
	body := map[string]int64{"daily_budget": budgetCents}
	return c.post(ctx, fmt.Sprintf("/campaigns/%s/budget", campaignID), body)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	if err != nil {
		kind := port.ExecOther
		if errors.Is(err, context.DeadlineExceeded) {
			kind = port.ExecTimeout
		}
		return &port.ExecutionError{Kind: kind, Message: err.Error(), Cause: err}
	}
	if resp.IsSuccess() {
		return nil
	}

	kind := port.ExecOther
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = port.ExecAuth
	case http.StatusNotFound:
		kind = port.ExecNotFound
	case http.StatusTooManyRequests:
		kind = port.ExecRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		kind = port.ExecTimeout
	}
	return &port.ExecutionError{
		Kind:    kind,
		Message: fmt.Sprintf("POST %s: status %d", path, resp.StatusCode()),
	}
}
