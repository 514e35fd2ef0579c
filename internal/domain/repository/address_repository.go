package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

// ErrAddressNotFound is returned when an address does not exist.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository handles persistence for addresses and their links to users.
type AddressRepository interface {
	// Create persists the address and links it to userID.
	Create(ctx context.Context, userID int64, address *entity.Address) error

	FindByID(ctx context.Context, id int64) (*entity.Address, error)

	ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error)

	// IsOwnedBy reports whether the address is linked to the user.
	IsOwnedBy(ctx context.Context, addressID, userID int64) (bool, error)

	Update(ctx context.Context, address *entity.Address) error

	Delete(ctx context.Context, id int64) error
}
