package middleware

import (
	"errors"
	"net/http"

	"fast-food/pkg/token"
	"fast-food/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RoleAdmin = "admin"

// Auth verifies the bearer token and puts the caller's identity on the request context.
func Auth(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := utils.BearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				logger.Debug("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				if errors.Is(err, token.ErrExpiredToken) {
					utils.ResponseForbidden(w, "Token expired")
					return
				}
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user id", zap.String("user_id", claims.UserID))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			if role, _ := utils.GetRoleFromContext(r.Context()); role != RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
