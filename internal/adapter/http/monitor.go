package httpadapter

import (
	"net/http"

	"mesa-board/internal/core/domain"
)

type refreshResponse struct {
	OK        bool `json:"ok"`
	Periods   int  `json:"periods"`
	Anomalies int  `json:"anomalies"`
}

func scopeFrom(r *http.Request) domain.Scope {
	q := r.URL.Query()
	return domain.Scope{
		CampaignTable: q.Get("campaign_table"),
		SourceTable:   q.Get("data_table"),
	}
}

// handleMonitorRefresh recomputes the monthly rollups of the scope named by
// the `campaign_table` and `data_table` query parameters. Read-only callers
// get HTTP 403, missing parameters HTTP 400 and unknown tables HTTP 404.
func (h *Handler) handleMonitorRefresh(w http.ResponseWriter, r *http.Request) {
	res, err := h.monitor.Refresh(r.Context(), principalFrom(r.Context()), scopeFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, refreshResponse{OK: true, Periods: res.Periods, Anomalies: res.Anomalies})
}

// handleMonitorView returns the cache state of the scope with its rows.
func (h *Handler) handleMonitorView(w http.ResponseWriter, r *http.Request) {
	view, err := h.monitor.Status(r.Context(), principalFrom(r.Context()), scopeFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleMonitorRows returns the cached rows of the scope as a bare array.
func (h *Handler) handleMonitorRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.monitor.GetRows(r.Context(), principalFrom(r.Context()), scopeFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}
