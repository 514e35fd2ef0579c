package entity

// CatalogKind names a lookup table that only carries a name.
type CatalogKind string

const (
	CatalogBrand       CatalogKind = "brand"
	CatalogSupplier    CatalogKind = "supplier"
	CatalogProductType CatalogKind = "type"
	CatalogIDType      CatalogKind = "id type"
)

func (k CatalogKind) String() string {
	return string(k)
}

// CatalogItem is a brand, supplier, product type or identification type.
type CatalogItem struct {
	ID   int64
	Name string
}
