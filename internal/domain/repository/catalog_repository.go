package repository

import (
	"context"
	"errors"

	"padelpoint/internal/domain/entity"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrCatalogNameTaken    = errors.New("catalog item name already in use")
)

// CatalogRepository stores the name-only lookup tables, selected by kind.
type CatalogRepository interface {
	Create(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error
	List(ctx context.Context, kind entity.CatalogKind) ([]*entity.CatalogItem, error)
	FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error)
	Update(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error
	Delete(ctx context.Context, kind entity.CatalogKind, id int64) error
}
