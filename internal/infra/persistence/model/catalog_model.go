package model

// CatalogModel is implemented by the name-only lookup tables.
type CatalogModel interface {
	TableName() string
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (BrandModel) TableName() string {
	return "brands"
}

// SupplierModel mirrors the 'suppliers' table.
type SupplierModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (SupplierModel) TableName() string {
	return "suppliers"
}

// ProductTypeModel mirrors the 'product_types' table.
type ProductTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (ProductTypeModel) TableName() string {
	return "product_types"
}

// IDTypeModel mirrors the 'id_types' table.
type IDTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (IDTypeModel) TableName() string {
	return "id_types"
}
