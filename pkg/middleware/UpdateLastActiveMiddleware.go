package middleware

import (
	"net/http"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/session"
)

// UpdateLastActiveMiddleware keeps the caller's workspace from being evicted as idle.
func UpdateLastActiveMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess := GetSessionFromContext(r.Context()); sess != nil {
				if ws, ok := sessions.Lookup(sess.UserID); ok {
					ws.Touch(time.Now())
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
