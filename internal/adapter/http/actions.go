package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// actionResponse is the JSON shape of one audit record. It is a DTO used
// by the HTTP layer and does not contain domain behaviour.
type actionResponse struct {
	ID                string                 `json:"id"`
	AccountID         string                 `json:"account_id"`
	CampaignID        string                 `json:"campaign_id"`
	ActionType        domain.ActionType      `json:"action_type"`
	Status            domain.ActionStatus    `json:"status"`
	BudgetBeforeCents int64                  `json:"budget_before_cents"`
	BudgetAfterCents  int64                  `json:"budget_after_cents"`
	ChangePct         float64                `json:"change_pct"`
	Multiplier        float64                `json:"multiplier"`
	Metrics           domain.CampaignMetrics `json:"metrics"`
	Reasoning         string                 `json:"reasoning"`
	RequiresApproval  bool                   `json:"requires_approval"`
	Approver          *string                `json:"approver,omitempty"`
	ApprovedAt        *time.Time             `json:"approved_at,omitempty"`
	ReviewNote        *string                `json:"review_note,omitempty"`
	ExecutedAt        *time.Time             `json:"executed_at,omitempty"`
	Error             *string                `json:"error,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

func toActionResponse(a *domain.ScalingAction) actionResponse {
	return actionResponse{
		ID:                a.ID.String(),
		AccountID:         a.AccountID,
		CampaignID:        a.CampaignID,
		ActionType:        a.ActionType,
		Status:            a.Status,
		BudgetBeforeCents: a.BudgetBeforeCents,
		BudgetAfterCents:  a.BudgetAfterCents,
		ChangePct:         a.ChangePct,
		Multiplier:        a.Multiplier,
		Metrics:           a.Metrics,
		Reasoning:         a.Reasoning,
		RequiresApproval:  a.RequiresApproval,
		Approver:          a.Approver,
		ApprovedAt:        a.ApprovedAt,
		ReviewNote:        a.ReviewNote,
		ExecutedAt:        a.ExecutedAt,
		Error:             a.Error,
		CreatedAt:         a.CreatedAt,
	}
}

// handleListActions returns audit records. Optional query parameters:
// `account_id`, `campaign_id`, `status` and `limit`.
func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.ActionFilter{
		AccountID:  q.Get("account_id"),
		CampaignID: q.Get("campaign_id"),
		Status:     domain.ActionStatus(q.Get("status")),
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	actions, err := h.svc.ListActions(r.Context(), filter)
	if err != nil {
		h.logger.Error("list actions error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	out := make([]actionResponse, 0, len(actions))
	for i := range actions {
		out = append(out, toActionResponse(&actions[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleApprove transitions a PENDING action to APPROVED and executes
// it. The request body must name the approver. Unknown ids return 404;
// terminal actions return 409.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid action id", http.StatusBadRequest)
		return
	}
	var body struct {
		Approver string `json:"approver"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil || body.Approver == "" {
		http.Error(w, "approver is required", http.StatusBadRequest)
		return
	}

	action, err := h.svc.Approve(r.Context(), id, body.Approver)
	if err != nil {
		h.writeActionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toActionResponse(action))
}

// handleReject transitions a PENDING action to REJECTED with a reason.
func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid action id", http.StatusBadRequest)
		return
	}
	var body struct {
		By     string `json:"by"`
		Reason string `json:"reason"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil || body.By == "" {
		http.Error(w, "by is required", http.StatusBadRequest)
		return
	}

	action, err := h.svc.Reject(r.Context(), id, body.By, body.Reason)
	if err != nil {
		h.writeActionError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toActionResponse(action))
}

func (h *Handler) writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrActionNotFound):
		http.Error(w, "action not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("action error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
