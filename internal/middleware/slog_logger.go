// Package middleware provides HTTP middleware for the Tripboard API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// NewSlogLogger returns a middleware that logs each request as a structured
// JSON line via the provided slog.Logger. It captures method, path, HTTP
// status, duration, the request ID set by chi's RequestID middleware, and
// the caller's user id when the authenticator resolved one downstream.
//
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// WrapResponseWriter intercepts WriteHeader so we can read the
			// status code after the downstream handler has run. The identity
			// holder does the same for the authenticator's result.
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var caller Identity
			r = r.WithContext(withIdentityHolder(r.Context(), &caller))

			next.ServeHTTP(ww, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			}
			if caller.UserID != uuid.Nil {
				attrs = append(attrs, "user_id", caller.UserID.String())
			}

			log.InfoContext(r.Context(), "request", attrs...)
		})
	}
}
