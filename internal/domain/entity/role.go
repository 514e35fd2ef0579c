package entity

import "slices"

const (
	RoleNameAdmin = "admin"
	RoleNameUser  = "user"
)

// Role is a named permission set granted to users.
type Role struct {
	ID   int64
	Name string
}

// HasRole reports whether names contains role.
func HasRole(names []string, role string) bool {
	return slices.Contains(names, role)
}
