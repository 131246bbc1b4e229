package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"mesa-board/internal/core/domain"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	principalKey
)

const requestIDHeader = "X-Request-ID"

// Session value keys written by the login service.
const (
	sessionUserID = "user_id"
	sessionEmail  = "email"
	sessionRole   = "role"
)

// requestID tags each request with an id, reusing one sent by a proxy.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, rid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
	})
}

func requestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey).(string)
	return rid
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("http",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Duration("latency", time.Since(start)))
	})
}

// withPrincipal reads the caller identity from the session cookie. A missing
// or unreadable session yields the anonymous principal; use cases decide
// whether that is acceptable.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p domain.Principal
		sess, err := h.sessions.Get(r, h.session.Name)
		if err != nil {
			h.logger.Debug("session rejected",
				slog.String("request_id", requestIDFrom(r.Context())),
				slog.Any("error", err))
		} else {
			p.UserID, _ = sess.Values[sessionUserID].(string)
			p.Email, _ = sess.Values[sessionEmail].(string)
			p.Role, _ = sess.Values[sessionRole].(string)
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
	})
}

func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey).(domain.Principal)
	return p
}
