// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a principal can have in the system.
type Role string

const (
	// RoleUser indicates an ordinary user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string as reported by the backend. The backend
// is not consistent about casing, so comparison is case-insensitive; anything
// unrecognized degrades to the ordinary user role.
func ParseRole(s string) Role {
	if strings.EqualFold(s, string(RoleAdmin)) {
		return RoleAdmin
	}

	return RoleUser
}

// Toggled returns the opposite role, used by the admin role switch.
func (r Role) Toggled() Role {
	if r == RoleAdmin {
		return RoleUser
	}

	return RoleAdmin
}
