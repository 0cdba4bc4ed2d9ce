package models

// User roles
const (
	RoleAdmin = "admin" // Full access, admin panel
	RoleUser  = "user"  // Regular user
)

// IsAdmin reports whether a role grants admin access
func IsAdmin(role string) bool {
	return role == RoleAdmin
}
