package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// CatalogUsecase manages brands, suppliers, product types and identification types.
type CatalogUsecase interface {
	Create(ctx context.Context, kind entity.CatalogKind, name string) (*entity.CatalogItem, error)
	List(ctx context.Context, kind entity.CatalogKind) ([]*entity.CatalogItem, error)
	FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error)
	Update(ctx context.Context, kind entity.CatalogKind, id int64, name string) (*entity.CatalogItem, error)
	Remove(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error)
}
