package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a conditional decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository handles product persistence and stock accounting.
type ProductRepository interface {
	// FindByID returns the product whatever its active state.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDs returns the products found, keyed by id. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error)

	// List returns the products matching filter ordered by id.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Deactivate(ctx context.Context, id int64) error

	// DecrementStock subtracts qty from an active product's stock only when enough stock is left.
	// It returns ErrInsufficientStock when no row qualified.
	DecrementStock(ctx context.Context, productID int64, qty int) error
}
