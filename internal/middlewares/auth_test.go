package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/jwt"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
)

func newToken(t *testing.T, j *jwt.JWT, role string) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := j.Generate(context.Background(), userID, role)
	assert.NoError(t, err)
	return userID, token
}

func TestAuthMiddleware(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	userID, token := newToken(t, j, models.RoleUser)

	var gotClaims *jwt.Claims
	handler := AuthMiddleware(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Valid token passes and claims land in the context.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotClaims.UserID)

	// Missing token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	// Garbage token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	userID, token := newToken(t, j, models.RoleUser)

	var gotClaims *jwt.Claims
	var hadClaims bool
	handler := OptionalAuthMiddleware(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, hadClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Anonymous requests pass through without claims.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hadClaims)

	// A valid token still attaches claims.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hadClaims)
	assert.Equal(t, userID, gotClaims.UserID)

	// An invalid token degrades to anonymous instead of failing.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)

	handler := AuthMiddleware(j)(RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// Admin role goes through.
	_, adminToken := newToken(t, j, models.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Regular users are forbidden.
	_, userToken := newToken(t, j, models.RoleUser)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())

	// RequireAdmin without AuthMiddleware in front rejects outright.
	bare := RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	bare.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
