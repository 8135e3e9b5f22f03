package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes. A request advertising a larger Content-Length is
// rejected with 413 before the next handler runs. Bodies of unknown length
// are wrapped in http.MaxBytesReader, so reading past the limit fails inside
// the handler with *http.MaxBytesError.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				//nolint:errcheck
				json.NewEncoder(w).Encode(map[string]map[string]string{
					"error": {
						"code":    "body_too_large",
						"message": fmt.Sprintf("request body exceeds %d bytes", limit),
					},
				})
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
