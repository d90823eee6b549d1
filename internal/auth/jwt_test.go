package auth_test

import (
	"testing"
	"time"

	"github.com/skyflying/vertical-datum/internal/auth"
	"github.com/skyflying/vertical-datum/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret-at-least-32-characters",
		Issuer:    "vertical-datum-test",
	}
}

func TestJWTValidator_ValidToken(t *testing.T) {
	cfg := testAuthConfig()
	validator := auth.NewJWTValidator(cfg)

	token, err := auth.IssueToken(cfg, "user@example.com", "Test User", []auth.Role{auth.RoleSurveyor}, time.Hour)
	require.NoError(t, err)

	userCtx, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", userCtx.Subject)
	assert.Equal(t, "Test User", userCtx.DisplayName)
	assert.True(t, userCtx.HasRole(auth.RoleSurveyor))
	assert.False(t, userCtx.IsAdmin())
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	validator := auth.NewJWTValidator(cfg)

	token, err := auth.IssueToken(cfg, "user@example.com", "", nil, -time.Minute)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	cfg := testAuthConfig()
	validator := auth.NewJWTValidator(cfg)

	other := &config.AuthConfig{JWTSecret: "a-different-secret-entirely-here", Issuer: cfg.Issuer}
	token, err := auth.IssueToken(other, "user@example.com", "", nil, time.Hour)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	cfg := testAuthConfig()
	validator := auth.NewJWTValidator(cfg)

	other := &config.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: "someone-else"}
	token, err := auth.IssueToken(other, "user@example.com", "", nil, time.Hour)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_Garbage(t *testing.T) {
	validator := auth.NewJWTValidator(testAuthConfig())

	_, err := validator.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUserContext_Roles(t *testing.T) {
	admin := &auth.UserContext{Subject: "a", Roles: []auth.Role{auth.RoleAdmin}}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.HasAnyRole(auth.RoleAdmin, auth.RoleSurveyor))

	svc := &auth.UserContext{Subject: "system", Roles: []auth.Role{auth.RoleService}}
	assert.True(t, svc.IsAdmin(), "service accounts can manage catalogues")

	surveyor := &auth.UserContext{Subject: "s", Roles: []auth.Role{auth.RoleSurveyor}}
	assert.False(t, surveyor.IsAdmin())
	assert.False(t, surveyor.HasRole(auth.RoleAdmin))
	assert.True(t, surveyor.HasRole(auth.RoleSurveyor))
}
