package usecase

import (
	"context"
	"io"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
)

// FileUpload is an uploaded file as received from a multipart form.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProductInput carries product fields. On update nil fields are left untouched.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Cost        *float64
	Stock       *int
	BrandID     *int64
	SupplierID  *int64
	TypeID      *int64
}

type ProductUsecase interface {
	// Create stores the product and, when image is non-nil, uploads it as the main image.
	Create(ctx context.Context, input ProductInput, image *FileUpload) (*entity.Product, error)
	FindAll(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindOne returns an active product.
	FindOne(ctx context.Context, id int64) (*entity.Product, error)

	Update(ctx context.Context, id int64, input ProductInput, image *FileUpload) (*entity.Product, error)

	// Remove deactivates the product.
	Remove(ctx context.Context, id int64) (*entity.Product, error)

	Search(ctx context.Context, query string, from, size int) (*service.ProductSearchResult, error)

	// ValidateOperation checks every line against existence, activity and stock.
	ValidateOperation(ctx context.Context, items []entity.StockLine) error
}
