package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	jwtutil "github.com/Dias221467/Alumni_Connect/pkg/jwt"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
)

type contextKey string

const sessionKey contextKey = "session"

// AuthMiddleware resolves the bearer token into a session and stores it in the request context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			sess, err := jwtutil.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				logger.Log.WithError(err).Warn("Rejected session token")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext returns the session set by AuthMiddleware, or nil.
func GetSessionFromContext(ctx context.Context) *models.Session {
	sess, ok := ctx.Value(sessionKey).(models.Session)
	if !ok {
		return nil
	}
	return &sess
}

// RequireRole rejects sessions whose role is not in roles.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := GetSessionFromContext(r.Context())
			if sess == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if sess.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}
