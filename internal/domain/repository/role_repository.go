package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var ErrRoleNotFound = errors.New("role not found")

type RoleRepository interface {
	List(ctx context.Context) ([]*entity.Role, error)
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error

	// EnsureExists creates the named role when missing.
	EnsureExists(ctx context.Context, name string) (*entity.Role, error)
}
