package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var ErrImageNotFound = errors.New("product image not found")

type ImageRepository interface {
	Create(ctx context.Context, image *entity.ProductImage) error

	// List returns all images, or only those of productID when it is non-nil.
	List(ctx context.Context, productID *int64) ([]*entity.ProductImage, error)

	FindByID(ctx context.Context, id int64) (*entity.ProductImage, error)
	Delete(ctx context.Context, id int64) error
}
