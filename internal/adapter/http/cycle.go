package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"adpilot/internal/core/port"
)

// handleRunCycle triggers one evaluation cycle. Optional query
// parameters: `account_id` limits the cycle to one account, `dry_run`
// runs the decision pipeline without persisting or executing anything.
// On success it returns the cycle report as JSON.
func (h *Handler) handleRunCycle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := port.CycleOptions{AccountID: q.Get("account_id")}

	if v := q.Get("dry_run"); v != "" {
		dryRun, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid dry_run", http.StatusBadRequest)
			return
		}
		opts.DryRun = dryRun
	}

	report, err := h.svc.RunCycle(r.Context(), opts)
	if err != nil {
		h.logger.Error("cycle error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
