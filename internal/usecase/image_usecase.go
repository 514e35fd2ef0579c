package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// ImageUsecase manages the secondary pictures of products.
type ImageUsecase interface {
	Upload(ctx context.Context, productID int64, file FileUpload) (*entity.ProductImage, error)

	// List returns every image, or those of productID when it is non-nil.
	List(ctx context.Context, productID *int64) ([]*entity.ProductImage, error)

	FindOne(ctx context.Context, id int64) (*entity.ProductImage, error)
	Remove(ctx context.Context, id int64) (*entity.ProductImage, error)
}
