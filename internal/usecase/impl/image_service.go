package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
	"padelpoint/internal/util"
)

const thumbnailContentType = "image/jpeg"

// imageService stores secondary product images in object storage alongside a JPEG thumbnail.
type imageService struct {
	imageRepo     repository.ImageRepository
	productRepo   repository.ProductRepository
	storage       service.ObjectStorage
	thumbnailer   service.Thumbnailer
	cache         service.ProductCache
	keyPrefix     string
	maxUploadSize int64
	logger        *slog.Logger
}

type ImageServiceParams struct {
	fx.In

	ImageRepo   repository.ImageRepository
	ProductRepo repository.ProductRepository
	Storage     service.ObjectStorage
	Thumbnailer service.Thumbnailer
	Cache       service.ProductCache
	Config      *config.Config
	Logger      *slog.Logger
}

func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		imageRepo:     params.ImageRepo,
		productRepo:   params.ProductRepo,
		storage:       params.Storage,
		thumbnailer:   params.Thumbnailer,
		cache:         params.Cache,
		keyPrefix:     params.Config.Storage.S3.Prefix,
		maxUploadSize: params.Config.Images.MaxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return loggerFor(ctx, srv.logger)
}

// Upload stores the original and its thumbnail, then records them. Uploaded objects are
// deleted again when the row cannot be saved.
func (srv *imageService) Upload(ctx context.Context, productID int64, file usecase.FileUpload) (*entity.ProductImage, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ProductNotFound(productID)
		}

		return nil, internalError(err, "Error finding the product by id")
	}
	if !product.IsActive {
		return nil, domainerrors.ProductNotFound(productID)
	}

	ext, ok := imageExtension(file.ContentType)
	if !ok {
		return nil, domainerrors.ErrUnsupportedImage
	}

	data, err := io.ReadAll(io.LimitReader(file.Content, srv.maxUploadSize+1))
	if err != nil {
		return nil, internalError(err, "Error reading the uploaded file")
	}
	if int64(len(data)) > srv.maxUploadSize {
		return nil, domainerrors.NewBadRequest("The file exceeds the maximum size of %s", util.FormatBytes(srv.maxUploadSize))
	}

	var thumb bytes.Buffer
	if err := srv.thumbnailer.Thumbnail(bytes.NewReader(data), &thumb); err != nil {
		srv.log(ctx).Info("Rejected product image", slog.Int64("product_id", productID), slog.Any("error", err))

		return nil, domainerrors.ErrUnsupportedImage
	}

	base := path.Join(srv.keyPrefix, "products", strconv.FormatInt(productID, 10), uuid.NewString())
	image := &entity.ProductImage{
		ProductID:    productID,
		Key:          base + ext,
		ThumbnailKey: base + "_thumb.jpg",
	}

	image.URL, err = srv.storage.Put(ctx, image.Key, file.ContentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, internalError(err, "Error saving the image on the server")
	}

	image.ThumbnailURL, err = srv.storage.Put(ctx, image.ThumbnailKey, thumbnailContentType, bytes.NewReader(thumb.Bytes()), int64(thumb.Len()))
	if err != nil {
		srv.deleteObjects(ctx, image.Key)

		return nil, internalError(err, "Error saving the image on the server")
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		srv.deleteObjects(ctx, image.Key, image.ThumbnailKey)

		return nil, internalError(err, "Error saving the product image")
	}

	srv.invalidate(ctx, productID)
	srv.log(ctx).Info("Product image stored", slog.Int64("product_id", productID), slog.Int64("image_id", image.ID))

	return image, nil
}

func (srv *imageService) deleteObjects(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := srv.storage.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete object", slog.String("key", key), slog.Any("error", err))
		}
	}
}

func (srv *imageService) invalidate(ctx context.Context, productID int64) {
	if err := srv.cache.Invalidate(ctx, productID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate product cache", slog.Int64("product_id", productID), slog.Any("error", err))
	}
}

func (srv *imageService) List(ctx context.Context, productID *int64) ([]*entity.ProductImage, error) {
	images, err := srv.imageRepo.List(ctx, productID)
	if err != nil {
		return nil, internalError(err, "Error loading the product images")
	}

	return images, nil
}

func (srv *imageService) FindOne(ctx context.Context, id int64) (*entity.ProductImage, error) {
	image, err := srv.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.NewNotFound("The image with id '%d' was not found", id)
		}

		return nil, internalError(err, "Error finding the product image")
	}

	return image, nil
}

// Remove deletes the stored objects first, then the row.
func (srv *imageService) Remove(ctx context.Context, id int64) (*entity.ProductImage, error) {
	image, err := srv.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{image.Key, image.ThumbnailKey} {
		if key == "" {
			continue
		}
		if err := srv.storage.Delete(ctx, key); err != nil {
			return nil, internalError(err, "Error deleting the image on the server")
		}
	}

	if err := srv.imageRepo.Delete(ctx, id); err != nil {
		return nil, internalError(err, fmt.Sprintf("Error deleting the image with id '%d'", id))
	}

	srv.invalidate(ctx, image.ProductID)

	return image, nil
}
