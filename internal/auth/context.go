package auth

import (
	"context"
)

// Role is an access level carried in the token claims
type Role string

const (
	// RoleAdmin can manage the benchmark and tide gauge catalogues
	RoleAdmin Role = "admin"
	// RoleSurveyor can submit transform jobs and edit benchmarks
	RoleSurveyor Role = "surveyor"
	// RoleService is granted to API key callers
	RoleService Role = "service"
)

// UserContext holds authenticated caller information
type UserContext struct {
	Subject     string
	DisplayName string
	Roles       []Role
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// HasRole checks if the caller has a specific role
func (u *UserContext) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole checks if the caller has any of the specified roles
func (u *UserContext) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if u.HasRole(role) {
			return true
		}
	}
	return false
}

// IsAdmin checks if the caller can manage catalogues
func (u *UserContext) IsAdmin() bool {
	return u.HasAnyRole(RoleAdmin, RoleService)
}

// RolesAsStrings returns roles as plain strings for logging
func (u *UserContext) RolesAsStrings() []string {
	out := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		out[i] = string(r)
	}
	return out
}
