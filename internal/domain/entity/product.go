package entity

import "time"

// Product is a sellable item of the catalog.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64 // Unit sale price.
	Cost        float64 // Unit acquisition cost, always below Price.
	Stock       int     // Units available; never negative.
	IsActive    bool    // Soft-delete flag. Inactive products cannot be sold.
	Image       string  // Main image URL.
	ImageKey    string  // Object key of the main image, empty for external URLs.
	Brand       *CatalogItem
	Supplier    *CatalogItem
	Type        *CatalogItem
	Images      []ProductImage // Secondary images.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter narrows a product listing. Zero values are ignored.
type ProductFilter struct {
	Brand    string
	Type     string
	Name     string
	MinPrice *float64
	MaxPrice *float64
	Price    *float64
	MinStock *int
	IsActive bool
	Limit    int
}

// ProductImage is an uploaded picture of a product stored in object storage.
type ProductImage struct {
	ID           int64
	ProductID    int64
	Key          string // Object key of the original.
	URL          string
	ThumbnailKey string
	ThumbnailURL string
	CreatedAt    time.Time
}

// StockLine is a requested quantity of one product.
type StockLine struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}
