package services

import "finanzas/internal/domain"

// The authorization policy is one table mapping (resource, action) to the
// role required to perform it. Pairs absent from the table need only a valid
// session. Every guard consults this table; no handler compares role strings
// on its own.
type policyKey struct{ resource, action string }

var policy = map[policyKey]string{
	{"transactions", "create"}: domain.RoleAdmin,
	{"users", "list"}:          domain.RoleAdmin,
	{"users", "update"}:        domain.RoleAdmin,
	{"reports", "view"}:        domain.RoleAdmin,
	{"reports", "export"}:      domain.RoleAdmin,
}

// RequiredRole returns the role needed for resource/action, or "" when any
// authenticated user may perform it.
func RequiredRole(resource, action string) string {
	return policy[policyKey{resource, action}]
}

// Allowed reports whether u may perform action on resource.
func Allowed(u *domain.User, resource, action string) bool {
	if u == nil {
		return false
	}
	need := RequiredRole(resource, action)
	return need == "" || u.Role == need
}
