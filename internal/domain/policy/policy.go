// Package policy decides whether a caller's roles satisfy a route's role requirement.
package policy

import (
	"padelpoint/internal/domain/entity"
)

// Decision is the outcome of a role check.
type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

func (d Decision) String() string {
	if d {
		return "allow"
	}

	return "deny"
}

// Decide applies two tiers: admins are always allowed, everyone else must meet the role floor.
// An empty requirement allows any authenticated caller.
func Decide(callerRoles, requiredRoles []string) Decision {
	if len(requiredRoles) == 0 {
		return Allow
	}

	if entity.HasRole(callerRoles, entity.RoleNameAdmin) {
		return Allow
	}

	return roleFloor(callerRoles, requiredRoles)
}

func roleFloor(callerRoles, requiredRoles []string) Decision {
	requiresAdmin := entity.HasRole(requiredRoles, entity.RoleNameAdmin)
	requiresUser := entity.HasRole(requiredRoles, entity.RoleNameUser)

	if requiresAdmin && !requiresUser {
		return Deny
	}

	if requiresUser && !entity.HasRole(callerRoles, entity.RoleNameUser) {
		return Deny
	}

	return Allow
}
