package service

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// ProductSearchResult is one page of full-text matches.
type ProductSearchResult struct {
	Total    int64
	Products []*entity.Product
}

// ProductIndex is the full-text search index of the catalog.
type ProductIndex interface {
	Index(ctx context.Context, product *entity.Product) error
	Remove(ctx context.Context, productID int64) error
	Search(ctx context.Context, query string, from, size int) (*ProductSearchResult, error)
}

// ProductCache caches products by id.
type ProductCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id int64) error
}
