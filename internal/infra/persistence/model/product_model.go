package model

import (
	"time"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;index"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(12,2);not null"`
	Cost        float64 `gorm:"type:decimal(12,2);not null"`
	Stock       int     `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	IsActive    bool    `gorm:"not null;default:true;index"`
	Image       string  `gorm:"type:text"`
	ImageKey    string  `gorm:"type:text"`
	BrandID     *int64
	Brand       *BrandModel `gorm:"foreignKey:BrandID"`
	SupplierID  *int64
	Supplier    *SupplierModel `gorm:"foreignKey:SupplierID"`
	TypeID      *int64
	Type        *ProductTypeModel   `gorm:"foreignKey:TypeID"`
	Images      []ProductImageModel `gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. Rows go away with their product.
type ProductImageModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ProductID    int64  `gorm:"not null;index"`
	Key          string `gorm:"type:varchar(255);not null"`
	URL          string `gorm:"type:text;not null"`
	ThumbnailKey string `gorm:"type:varchar(255)"`
	ThumbnailURL string `gorm:"type:text"`
	CreatedAt    time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductImageModel) TableName() string {
	return "product_images"
}
