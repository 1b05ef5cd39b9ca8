package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

// ruleRequest is the JSON shape for saving a scaling rule. Monetary
// fields are integer cents.
type ruleRequest struct {
	AccountID  string  `json:"account_id"`
	CampaignID *string `json:"campaign_id,omitempty"`
	Enabled    bool    `json:"enabled"`

	ROASScaleUpAggressive float64 `json:"roas_scale_up_aggressive"`
	ROASScaleUp           float64 `json:"roas_scale_up"`
	ROASScaleDown         float64 `json:"roas_scale_down"`
	ROASPause             float64 `json:"roas_pause"`
	CTRThreshold          float64 `json:"ctr_threshold"`
	MinImpressions        int64   `json:"min_impressions"`

	AggressiveUpMultiplier float64 `json:"aggressive_up_multiplier"`
	UpMultiplier           float64 `json:"up_multiplier"`
	DownMultiplier         float64 `json:"down_multiplier"`

	MinDailyBudgetCents int64  `json:"min_daily_budget_cents"`
	MaxDailyBudgetCents *int64 `json:"max_daily_budget_cents,omitempty"`

	RequireApprovalThresholdCents int64 `json:"require_approval_threshold_cents"`
	AutoApproveUpToCents          int64 `json:"auto_approve_up_to_cents"`
	RequireApprovalOnPause        bool  `json:"require_approval_on_pause"`
}

// handleSaveRule validates and persists a scaling rule. Invalid
// threshold orderings are rejected with 422 before anything is stored.
func (h *Handler) handleSaveRule(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	rule, err := domain.NewScalingRule(domain.ScalingRule{
		AccountID:  req.AccountID,
		CampaignID: req.CampaignID,
		Enabled:    req.Enabled,

		ROASScaleUpAggressive: req.ROASScaleUpAggressive,
		ROASScaleUp:           req.ROASScaleUp,
		ROASScaleDown:         req.ROASScaleDown,
		ROASPause:             req.ROASPause,
		CTRThreshold:          req.CTRThreshold,
		MinImpressions:        req.MinImpressions,

		AggressiveUpMultiplier: req.AggressiveUpMultiplier,
		UpMultiplier:           req.UpMultiplier,
		DownMultiplier:         req.DownMultiplier,

		MinDailyBudgetCents: req.MinDailyBudgetCents,
		MaxDailyBudgetCents: req.MaxDailyBudgetCents,

		RequireApprovalThresholdCents: req.RequireApprovalThresholdCents,
		AutoApproveUpToCents:          req.AutoApproveUpToCents,
		RequireApprovalOnPause:        req.RequireApprovalOnPause,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err = h.svc.SaveRule(r.Context(), &rule); err != nil {
		if errors.Is(err, domain.ErrRuleInvalid) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("save rule error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"id": rule.ID.String()})
}
