package domain

import "slices"

// Role represents a user role within a tenant
type Role string

const (
	// RoleAdmin manages the tenant and is exempt from Free Plan quotas
	RoleAdmin Role = "admin"

	// RoleMember has basic note access, subject to the Free Plan note ceiling
	RoleMember Role = "member"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleMember}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasAnyRole checks if a role is one of the required roles.
// Roles are flat: admin does not implicitly satisfy a member requirement.
func HasAnyRole(role Role, requiredRoles ...Role) bool {
	return slices.Contains(requiredRoles, role)
}
