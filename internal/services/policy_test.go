package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finanzas/internal/domain"
)

func TestPolicyTable(t *testing.T) {
	assert.Equal(t, domain.RoleAdmin, RequiredRole("transactions", "create"))
	assert.Equal(t, domain.RoleAdmin, RequiredRole("users", "list"))
	assert.Equal(t, domain.RoleAdmin, RequiredRole("users", "update"))
	assert.Equal(t, domain.RoleAdmin, RequiredRole("reports", "view"))
	assert.Equal(t, domain.RoleAdmin, RequiredRole("reports", "export"))

	// Session-only operations have no table entry
	assert.Empty(t, RequiredRole("transactions", "list"))
	assert.Empty(t, RequiredRole("profile", "read"))
	assert.Empty(t, RequiredRole("profile", "update"))
}

func TestAllowed(t *testing.T) {
	admin := &domain.User{ID: "a", Role: domain.RoleAdmin}
	user := &domain.User{ID: "u", Role: domain.RoleUser}

	assert.False(t, Allowed(nil, "transactions", "list"), "no session is never allowed")

	assert.True(t, Allowed(admin, "transactions", "create"))
	assert.True(t, Allowed(admin, "transactions", "list"))
	assert.False(t, Allowed(user, "transactions", "create"))
	assert.True(t, Allowed(user, "transactions", "list"))
	assert.False(t, Allowed(user, "users", "update"))
	assert.True(t, Allowed(user, "profile", "update"))
}
