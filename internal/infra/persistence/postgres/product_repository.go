package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/model"
)

var productColumns = []string{
	"name", "description", "price", "cost", "stock", "is_active", "image", "image_key",
	"brand_id", "supplier_id", "type_id",
}

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Brand").
		Preload("Supplier").
		Preload("Type").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("product_images.id") })
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.preloaded(repo.db.WithContext(ctx)).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs reads from the primary: the result feeds a stock check that precedes a write.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Product, error) {
	products := make(map[int64]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id IN ?", ids).
		Find(&productModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products")
	}

	for i := range productModels {
		products[productModels[i].ID] = toProductDomain(&productModels[i])
	}

	return products, nil
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Select("products.*")

	if filter.Brand != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("LOWER(brands.name) LIKE ?", likePattern(filter.Brand))
	}
	if filter.Type != "" {
		query = query.Joins("JOIN product_types ON product_types.id = products.type_id").
			Where("LOWER(product_types.name) LIKE ?", likePattern(filter.Type))
	}
	if filter.Name != "" {
		query = query.Where("LOWER(products.name) LIKE ?", likePattern(filter.Name))
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.Price != nil {
		query = query.Where("products.price = ?", *filter.Price)
	}
	if filter.MinStock != nil {
		query = query.Where("products.stock >= ?", *filter.MinStock)
	}
	query = query.Where("products.is_active = ?", filter.IsActive)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []model.ProductModel
	if err := repo.preloaded(query).Order("products.id").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewBadRequest("The brand, supplier or type of the product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select(productColumns).
		Updates(fromProductDomain(product))
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewBadRequest("The brand, supplier or type of the product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock is a single conditional UPDATE, so concurrent orders can never oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, productID int64, qty int) error {
	if qty <= 0 {
		return errors.Errorf("invalid decrement quantity %d", qty)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND is_active = ? AND stock >= ?", productID, true, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func likePattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	var brandName, supplierName, typeName string
	if productM.Brand != nil {
		brandName = productM.Brand.Name
	}
	if productM.Supplier != nil {
		supplierName = productM.Supplier.Name
	}
	if productM.Type != nil {
		typeName = productM.Type.Name
	}

	product := &entity.Product{
		ID:          productM.ID,
		Name:        productM.Name,
		Description: productM.Description,
		Price:       productM.Price,
		Cost:        productM.Cost,
		Stock:       productM.Stock,
		IsActive:    productM.IsActive,
		Image:       productM.Image,
		ImageKey:    productM.ImageKey,
		Brand:       catalogItem(productM.BrandID, brandName),
		Supplier:    catalogItem(productM.SupplierID, supplierName),
		Type:        catalogItem(productM.TypeID, typeName),
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}

	product.Images = make([]entity.ProductImage, 0, len(productM.Images))
	for i := range productM.Images {
		product.Images = append(product.Images, *toImageDomain(&productM.Images[i]))
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Cost:        product.Cost,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		Image:       product.Image,
		ImageKey:    product.ImageKey,
		BrandID:     catalogID(product.Brand),
		SupplierID:  catalogID(product.Supplier),
		TypeID:      catalogID(product.Type),
	}
}

func catalogItem(id *int64, name string) *entity.CatalogItem {
	if id == nil {
		return nil
	}

	return &entity.CatalogItem{ID: *id, Name: name}
}

func catalogID(item *entity.CatalogItem) *int64 {
	if item == nil || item.ID == 0 {
		return nil
	}
	id := item.ID

	return &id
}
