package middleware

import (
	"fmt"
	"net/http"
)

// NewMaxBodySize returns a middleware that caps request body size at maxBytes.
//
// Requests declaring a larger Content-Length are rejected up front with 413.
// Bodies without a declared length are wrapped in http.MaxBytesReader, so a
// handler reading past the cap gets an error instead of an unbounded body.
func NewMaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				fmt.Fprint(w, `{"error":{"code":"too_large","message":"request body too large"}}`)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
