// Package entity contains the core business objects of the padel store,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// LoginMethod is how a user authenticates.
type LoginMethod string

const (
	LoginMethodLocal  LoginMethod = "local"
	LoginMethodGoogle LoginMethod = "google"
)

// ParseLoginMethod normalises a raw method; ok is false for unknown methods.
func ParseLoginMethod(raw string) (LoginMethod, bool) {
	switch method := LoginMethod(strings.ToLower(strings.TrimSpace(raw))); method {
	case LoginMethodLocal, LoginMethodGoogle:
		return method, true
	default:
		return "", false
	}
}

func (m LoginMethod) String() string {
	return string(m)
}

// User is a customer or staff account of the store.
type User struct {
	ID                     int64        // Numeric identifier, also carried in session tokens.
	Name                   string       // Given name.
	Surname                string       // Family name.
	Username               string       // Unique handle, usable as a login identifier.
	Email                  string       // Unique contact email, usable as a login identifier.
	Phone                  string       // Contact phone.
	IDType                 *CatalogItem // Identification document kind (DNI, passport, ...).
	IDNumber               string       // Unique identification document number.
	Method                 LoginMethod  // Local password or Google sign-in.
	IsActive               bool         // Soft-delete flag.
	Roles                  []Role       // Granted roles.
	Addresses              []Address    // Registered shipping addresses.
	PasswordHash           string       // bcrypt hash; empty for Google users.
	PasswordResetCode      string       // Pending 6-digit reset code.
	PasswordResetExpiresAt *time.Time   // Expiry of PasswordResetCode.
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// RoleNames returns the names of the user's roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}

	return names
}

// OwnsAddress reports whether addressID is registered to the user.
func (u *User) OwnsAddress(addressID int64) bool {
	for _, address := range u.Addresses {
		if address.ID == addressID {
			return true
		}
	}

	return false
}

// Address looks up one of the user's addresses.
func (u *User) Address(addressID int64) (*Address, bool) {
	for i := range u.Addresses {
		if u.Addresses[i].ID == addressID {
			return &u.Addresses[i], true
		}
	}

	return nil, false
}
