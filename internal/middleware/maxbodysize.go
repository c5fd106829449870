package middleware

import (
	"net/http"

	"github.com/pkordes/trip-registry/internal/handler"
)

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. Requests whose Content-Length already exceeds the limit are
// rejected with 413 before reaching the next handler; bodies of unknown
// length are wrapped in http.MaxBytesReader so reads past the limit fail.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				handler.WriteError(w, http.StatusRequestEntityTooLarge, handler.CodeTooLarge, "request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
