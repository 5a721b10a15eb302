package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/jwt"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/logger"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

// Tokener defines the minimal interface needed by the auth middlewares.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey string

const claimsKey contextKey = "authClaims"

// ClaimsFromContext returns the claims attached by AuthMiddleware or
// OptionalAuthMiddleware, if any.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// AuthMiddleware validates the bearer token and attaches its claims to the
// request context. Requests without a valid token get 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, claimsKey, claims)))
		})
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present and
// lets anonymous requests through untouched. Invalid tokens are treated as
// anonymous rather than rejected.
func OptionalAuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err == nil {
				if claims, err := tokener.GetClaims(ctx, tokenString); err == nil {
					ctx = context.WithValue(ctx, claimsKey, claims)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose claims are missing or carry a
// non-admin role. It must run after AuthMiddleware.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if claims.Role != models.RoleAdmin {
				logger.Log.Warnw("admin access denied", "user_id", claims.UserID, "role", claims.Role)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "Forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
