package middleware

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/session"

	"go.uber.org/zap"
)

type contextKey string

// UserIDKey holds the resolved user id in the request context.
const UserIDKey contextKey = "user_id"

// SessionAuth resolves the bearer token against the session registry
// and injects the user id into the request context. Requests without a
// valid token are rejected with 401.
func SessionAuth(sessions *session.Registry, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header")
				RespondWithError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.Debug("Invalid authorization header format")
				RespondWithError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			userID, ok := sessions.Resolve(token)
			if !ok {
				logger.Debug("Unknown session token")
				RespondWithError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the user id placed in the context by SessionAuth.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
