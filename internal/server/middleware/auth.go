package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fieldsync/parcelsync/internal/server/jwt"
)

type contextKey string

// DeviceIDKey is the context key under which the authenticated device
// ID is stored.
const DeviceIDKey contextKey = "device_id"

// DeviceIDFromContext returns the device ID placed in the context by
// AuthMiddleware.
func DeviceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(DeviceIDKey).(string)
	return id, ok
}

// TokenValidator validates a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware creates middleware that verifies the bearer token on
// every request and stores the device ID in the request context.
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Expected format: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), DeviceIDKey, claims.DeviceID)

			logger.Debug("Device authenticated", "device_id", claims.DeviceID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
