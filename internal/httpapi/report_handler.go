package httpapi

import (
	"net/http"

	"canteen-be/internal/utils"
)

func (h *Handler) completedItemsReport(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	q := r.URL.Query()
	rep, err := h.ReportSvc.CompletedItems(r.Context(), q.Get("dateFrom"), q.Get("dateTo"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rep, http.StatusOK)
}

// dashboard combines store aggregates with in-process request counters.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	stats, err := h.ReportSvc.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"stats":    stats,
		"counters": h.Metrics.Snapshot(),
	}, http.StatusOK)
}
