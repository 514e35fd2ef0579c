// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"padelpoint/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserConflict is returned when a unique user field (email, username, id number) is already taken.
var ErrUserConflict = errors.New("user unique field already in use")

// UserRepository defines the standard operations for user persistence.
// Lookups preload roles, addresses and the identification type.
type UserRepository interface {
	// FindByID returns ErrUserNotFound for deactivated users.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error)

	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	// Create persists the user together with its role links and new addresses.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the scalar profile fields of the user.
	Update(ctx context.Context, user *entity.User) error

	Deactivate(ctx context.Context, id int64) error

	SetPasswordResetCode(ctx context.Context, id int64, code string, expiresAt time.Time) error

	// UpdatePassword stores a new hash and clears any pending reset code.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
