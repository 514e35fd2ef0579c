package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	mockRepo "padelpoint/internal/mocks/repository"
	mockSvc "padelpoint/internal/mocks/service"
	"padelpoint/internal/usecase"
)

type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	imageRepo   *mockRepo.MockImageRepository
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockObjectStorage
	thumbnailer *mockSvc.MockThumbnailer
	cache       *mockSvc.MockProductCache
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	cfg := testConfig()
	cfg.Images.MaxUploadSize = 16

	f := imageServiceFixtures{
		imageRepo:   mockRepo.NewMockImageRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		storage:     mockSvc.NewMockObjectStorage(t),
		thumbnailer: mockSvc.NewMockThumbnailer(t),
		cache:       mockSvc.NewMockProductCache(t),
	}
	f.service = NewImageService(ImageServiceParams{
		ImageRepo:   f.imageRepo,
		ProductRepo: f.productRepo,
		Storage:     f.storage,
		Thumbnailer: f.thumbnailer,
		Cache:       f.cache,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return f
}

func pngUpload(body string) usecase.FileUpload {
	return usecase.FileUpload{Filename: "a.png", ContentType: "image/png", Size: int64(len(body)), Content: strings.NewReader(body)}
}

func writeThumb(_ io.Reader, dst io.Writer) {
	_, _ = dst.Write([]byte("jpeg"))
}

func TestImageService_Upload_StoresOriginalAndThumbnail(t *testing.T) {
	f := createTestImageService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(racket(), nil)
	f.thumbnailer.EXPECT().Thumbnail(mock.Anything, mock.Anything).Run(writeThumb).Return(nil)
	f.storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "test/products/1/") && strings.HasSuffix(key, ".png")
	}), "image/png", mock.Anything, int64(5)).Return("https://cdn.test/a.png", nil)
	f.storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "_thumb.jpg")
	}), "image/jpeg", mock.Anything, int64(4)).Return("https://cdn.test/a_thumb.jpg", nil)
	f.imageRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, img *entity.ProductImage) { img.ID = 3 }).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, int64(1)).Return(nil)

	image, err := f.service.Upload(ctx, 1, pngUpload("\x89PNG1"))

	require.NoError(t, err)
	assert.Equal(t, int64(3), image.ID)
	assert.Equal(t, "https://cdn.test/a.png", image.URL)
	assert.Equal(t, "https://cdn.test/a_thumb.jpg", image.ThumbnailURL)
}

func TestImageService_Upload_CompensatesWhenRowFails(t *testing.T) {
	f := createTestImageService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(racket(), nil)
	f.thumbnailer.EXPECT().Thumbnail(mock.Anything, mock.Anything).Run(writeThumb).Return(nil)
	f.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://cdn.test/x", nil).Times(2)
	f.imageRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset"))
	f.storage.EXPECT().Delete(ctx, mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, ".png") })).Return(nil).Once()
	f.storage.EXPECT().Delete(ctx, mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, "_thumb.jpg") })).Return(nil).Once()

	_, err := f.service.Upload(ctx, 1, pngUpload("\x89PNG1"))

	assert.Equal(t, "Error saving the product image", messageOf(err))
}

func TestImageService_Upload_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		f := createTestImageService(t)
		f.productRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.Upload(ctx, 9, pngUpload("x"))
		assert.Equal(t, "The product with id '9' was not found", messageOf(err))
	})

	t.Run("unsupported content type", func(t *testing.T) {
		f := createTestImageService(t)
		f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(racket(), nil)

		_, err := f.service.Upload(ctx, 1, usecase.FileUpload{ContentType: "text/html", Content: strings.NewReader("<p>")})
		require.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
	})

	t.Run("undecodable image", func(t *testing.T) {
		f := createTestImageService(t)
		f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(racket(), nil)
		f.thumbnailer.EXPECT().Thumbnail(mock.Anything, mock.Anything).Return(errors.New("image: unknown format"))

		_, err := f.service.Upload(ctx, 1, pngUpload("garbage"))
		require.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
	})

	t.Run("too large", func(t *testing.T) {
		f := createTestImageService(t)
		f.productRepo.EXPECT().FindByID(ctx, int64(1)).Return(racket(), nil)

		_, err := f.service.Upload(ctx, 1, pngUpload(strings.Repeat("x", 17)))
		assert.Equal(t, "The file exceeds the maximum size of 16 B", messageOf(err))
	})
}

func TestImageService_Remove_DeletesObjectsThenRow(t *testing.T) {
	f := createTestImageService(t)
	ctx := context.Background()
	stored := &entity.ProductImage{ID: 3, ProductID: 1, Key: "k.png", ThumbnailKey: "k_thumb.jpg"}

	f.imageRepo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)
	f.storage.EXPECT().Delete(ctx, "k.png").Return(nil)
	f.storage.EXPECT().Delete(ctx, "k_thumb.jpg").Return(nil)
	f.imageRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)
	f.cache.EXPECT().Invalidate(ctx, int64(1)).Return(nil)

	image, err := f.service.Remove(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), image.ID)
}

func TestImageService_FindOne_NotFound(t *testing.T) {
	f := createTestImageService(t)
	ctx := context.Background()
	f.imageRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrImageNotFound)

	_, err := f.service.FindOne(ctx, 4)

	assert.Equal(t, "The image with id '4' was not found", messageOf(err))
}
