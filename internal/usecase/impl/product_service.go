package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	catalogRepo  repository.CatalogRepository
	storage      service.ObjectStorage
	index        service.ProductIndex
	cache        service.ProductCache
	cacheMetrics service.CacheMetrics
	keyPrefix    string
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CatalogRepo  repository.CatalogRepository
	Storage      service.ObjectStorage
	Index        service.ProductIndex
	Cache        service.ProductCache
	CacheMetrics service.CacheMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		catalogRepo:  params.CatalogRepo,
		storage:      params.Storage,
		index:        params.Index,
		cache:        params.Cache,
		cacheMetrics: params.CacheMetrics,
		keyPrefix:    params.Config.Storage.S3.Prefix,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return loggerFor(ctx, srv.logger)
}

func (srv *productService) Create(ctx context.Context, input usecase.ProductInput, image *usecase.FileUpload) (*entity.Product, error) {
	product := &entity.Product{IsActive: true}
	if err := srv.apply(ctx, product, input); err != nil {
		return nil, err
	}

	if image != nil {
		if err := srv.replaceMainImage(ctx, product, image); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardObject(ctx, product.ImageKey)

		return nil, internalError(err, "error saving the product instance")
	}

	srv.reindex(ctx, product)
	srv.log(ctx).Info("Product created", slog.Int64("product_id", product.ID))

	return product, nil
}

// apply copies the non-nil fields of input onto product and resolves its catalog references.
func (srv *productService) apply(ctx context.Context, product *entity.Product, input usecase.ProductInput) error {
	assign(&product.Name, input.Name)
	assign(&product.Description, input.Description)
	assign(&product.Price, input.Price)
	assign(&product.Cost, input.Cost)
	assign(&product.Stock, input.Stock)

	if product.Cost >= product.Price {
		return domainerrors.ErrCostNotBelowPrice
	}

	refs := []struct {
		kind entity.CatalogKind
		id   *int64
		dst  **entity.CatalogItem
	}{
		{entity.CatalogBrand, input.BrandID, &product.Brand},
		{entity.CatalogSupplier, input.SupplierID, &product.Supplier},
		{entity.CatalogProductType, input.TypeID, &product.Type},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}

		item, err := srv.catalogRepo.FindByID(ctx, ref.kind, *ref.id)
		if err != nil {
			if errors.Is(err, repository.ErrCatalogItemNotFound) {
				return domainerrors.NewNotFound("The %s with id '%d' was not found", ref.kind, *ref.id)
			}

			return internalError(err, fmt.Sprintf("Error finding the %s", ref.kind))
		}
		*ref.dst = item
	}

	return nil
}

// replaceMainImage uploads file and points product at it. The previous object is left for the caller.
func (srv *productService) replaceMainImage(ctx context.Context, product *entity.Product, file *usecase.FileUpload) error {
	ext, ok := imageExtension(file.ContentType)
	if !ok {
		return domainerrors.ErrUnsupportedImage
	}

	key := path.Join(srv.keyPrefix, "products", "main", uuid.NewString()+ext)
	url, err := srv.storage.Put(ctx, key, file.ContentType, file.Content, file.Size)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product image", slog.String("key", key), slog.Any("error", err))

		return internalError(err, "Error saving the image on the server")
	}

	product.Image = url
	product.ImageKey = key

	return nil
}

// discardObject deletes an uploaded object on a best-effort basis.
func (srv *productService) discardObject(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete object", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *productService) reindex(ctx context.Context, product *entity.Product) {
	if err := srv.index.Index(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to index product", slog.Int64("product_id", product.ID), slog.Any("error", err))
	}
}

func (srv *productService) invalidate(ctx context.Context, id int64) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to invalidate product cache", slog.Int64("product_id", id), slog.Any("error", err))
	}
}

func (srv *productService) FindAll(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, internalError(err, "Error loading all products")
	}

	return products, nil
}

// FindOne reads through the cache. Only active products are cached.
func (srv *productService) FindOne(ctx context.Context, id int64) (*entity.Product, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Product cache lookup failed", slog.Int64("product_id", id), slog.Any("error", err))
	}
	if cached != nil {
		srv.cacheMetrics.CacheLookup(true)

		return cached, nil
	}
	srv.cacheMetrics.CacheLookup(false)

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ProductNotFound(id)
		}

		return nil, internalError(err, "Error finding the product by id")
	}
	if !product.IsActive {
		return nil, domainerrors.ProductNotFound(id)
	}

	if err := srv.cache.Set(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to cache product", slog.Int64("product_id", id), slog.Any("error", err))
	}

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id int64, input usecase.ProductInput, image *usecase.FileUpload) (*entity.Product, error) {
	product, err := srv.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.apply(ctx, product, input); err != nil {
		return nil, err
	}

	previousKey := product.ImageKey
	if image != nil {
		if err := srv.replaceMainImage(ctx, product, image); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if image != nil {
			srv.discardObject(ctx, product.ImageKey)
		}

		return nil, internalError(err, "Error updating the product")
	}
	if image != nil {
		srv.discardObject(ctx, previousKey)
	}

	srv.invalidate(ctx, id)
	srv.reindex(ctx, product)

	return product, nil
}

// loadActive bypasses the cache so writes start from the stored row.
func (srv *productService) loadActive(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ProductNotFound(id)
		}

		return nil, internalError(err, "Error finding the product by id")
	}
	if !product.IsActive {
		return nil, domainerrors.ProductNotFound(id)
	}

	return product, nil
}

// Remove deactivates the product and drops it from the cache and the search index.
func (srv *productService) Remove(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Deactivate(ctx, id); err != nil {
		return nil, internalError(err, fmt.Sprintf("Error removing the product with id '%d'", id))
	}
	product.IsActive = false

	srv.invalidate(ctx, id)
	if err := srv.index.Remove(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to remove product from index", slog.Int64("product_id", id), slog.Any("error", err))
	}

	srv.log(ctx).Info("Product deactivated", slog.Int64("product_id", id))

	return product, nil
}

func (srv *productService) Search(ctx context.Context, query string, from, size int) (*service.ProductSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return &service.ProductSearchResult{Products: []*entity.Product{}}, nil
	}

	result, err := srv.index.Search(ctx, query, from, size)
	if err != nil {
		return nil, internalError(err, "Error searching the products")
	}

	return result, nil
}

func (srv *productService) ValidateOperation(ctx context.Context, items []entity.StockLine) error {
	for _, item := range items {
		product, err := srv.loadActive(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < item.Quantity {
			return domainerrors.NewBadRequest(
				"There is not enough stock of the product with id '%d' to carry out the operation", item.ProductID)
		}
	}

	return nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
}

// imageExtension maps a supported image content type to its file extension.
func imageExtension(contentType string) (string, bool) {
	mediaType, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(contentType)), ";")
	ext, ok := imageExtensions[strings.TrimSpace(mediaType)]

	return ext, ok
}
