package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"mesa-board/internal/config/configs"
	"mesa-board/internal/core/port"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// LimiterStats exposes the current window usage of the rate limiter.
type LimiterStats interface {
	Len() int
	Max() int
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the monitor and board use cases, the session store the caller
// identity is read from and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	monitor  port.MonitorUseCase
	board    port.BoardUseCase
	sessions sessions.Store
	session  configs.Session
	store    Pinger
	limiter  LimiterStats
	logger   *slog.Logger
	router   chi.Router
}

// Deps lists what NewHandler wires into the routes. Metrics may be nil, in
// which case /metrics is not served.
type Deps struct {
	Monitor  port.MonitorUseCase
	Board    port.BoardUseCase
	Sessions sessions.Store
	Session  configs.Session
	Store    Pinger
	Limiter  LimiterStats
	Metrics  http.Handler
	Logger   *slog.Logger
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		monitor:  d.Monitor,
		board:    d.Board,
		sessions: d.Sessions,
		session:  d.Session,
		store:    d.Store,
		limiter:  d.Limiter,
		logger:   d.Logger,
	}
	r := chi.NewRouter()
	r.Use(requestID, h.accessLog, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.withPrincipal)
		r.Post("/monitor/refresh", h.handleMonitorRefresh)
		r.Get("/monitor", h.handleMonitorView)
		r.Get("/monitor/rows", h.handleMonitorRows)
		r.Get("/campaigns/{id}/rows", h.handleCampaignRows)
		r.Get("/sources/{id}/rows", h.handleSourceRows)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
