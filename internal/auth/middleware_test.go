package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skyflying/vertical-datum/internal/auth"
	"github.com/skyflying/vertical-datum/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddleware(t *testing.T) (*auth.Middleware, *config.AuthConfig) {
	t.Helper()
	cfg := testAuthConfig()
	cfg.APIKey = "test-api-key"
	return auth.NewMiddleware(cfg, zap.NewNop()), cfg
}

func okHandler(captured **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userCtx, ok := auth.FromContext(r.Context()); ok && captured != nil {
			*captured = userCtx
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_BearerToken(t *testing.T) {
	m, cfg := newTestMiddleware(t)

	token, err := auth.IssueToken(cfg, "user@example.com", "Test User", []auth.Role{auth.RoleSurveyor}, time.Hour)
	require.NoError(t, err)

	var captured *auth.UserContext
	handler := m.Authenticate(okHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "user@example.com", captured.Subject)
	assert.True(t, captured.HasRole(auth.RoleSurveyor))
}

func TestAuthenticate_APIKey(t *testing.T) {
	m, _ := newTestMiddleware(t)

	var captured *auth.UserContext
	handler := m.Authenticate(okHandler(&captured))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tidegauges/sync", nil)
	req.Header.Set("x-api-key", "test-api-key")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "system", captured.Subject)
	assert.True(t, captured.HasRole(auth.RoleService))
}

func TestAuthenticate_InvalidAPIKey(t *testing.T) {
	m, _ := newTestMiddleware(t)
	handler := m.Authenticate(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("x-api-key", "wrong-key")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m, _ := newTestMiddleware(t)
	handler := m.Authenticate(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m, _ := newTestMiddleware(t)
	handler := m.Authenticate(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	m, cfg := newTestMiddleware(t)

	protected := m.Authenticate(m.RequireRole(auth.RoleAdmin, auth.RoleSurveyor)(okHandler(nil)))

	t.Run("allowed role", func(t *testing.T) {
		token, err := auth.IssueToken(cfg, "s@example.com", "", []auth.Role{auth.RoleSurveyor}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/benchmarks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		token, err := auth.IssueToken(cfg, "u@example.com", "", nil, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/benchmarks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	m, cfg := newTestMiddleware(t)

	protected := m.Authenticate(m.RequireAdmin(okHandler(nil)))

	t.Run("admin allowed", func(t *testing.T) {
		token, err := auth.IssueToken(cfg, "a@example.com", "", []auth.Role{auth.RoleAdmin}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/benchmarks/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api key acts as service admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tidegauges/sync", nil)
		req.Header.Set("x-api-key", "test-api-key")
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("surveyor rejected", func(t *testing.T) {
		token, err := auth.IssueToken(cfg, "s@example.com", "", []auth.Role{auth.RoleSurveyor}, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/benchmarks/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
