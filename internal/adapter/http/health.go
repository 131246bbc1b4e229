package httpadapter

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status  string        `json:"status"`
	Store   string        `json:"store"`
	Limiter limiterHealth `json:"limiter"`
}

type limiterHealth struct {
	InWindow int `json:"in_window"`
	Max      int `json:"max"`
}

// handleHealth pings the store and reports the rate limiter load. An
// unreachable store yields HTTP 503.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Store: "ok"}
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			resp.Status, resp.Store = "degraded", err.Error()
			status = http.StatusServiceUnavailable
		}
	}
	if h.limiter != nil {
		resp.Limiter = limiterHealth{InWindow: h.limiter.Len(), Max: h.limiter.Max()}
	}
	h.writeJSON(w, status, resp)
}
