package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/model"
)

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (repo *imageRepository) Create(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromImageDomain(image)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *imageRepository) List(ctx context.Context, productID *int64) ([]*entity.ProductImage, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var imageModels []model.ProductImageModel
	if err := query.Find(&imageModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list product images")
	}

	images := make([]*entity.ProductImage, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, toImageDomain(&imageModels[i]))
	}

	return images, nil
}

func (repo *imageRepository) FindByID(ctx context.Context, id int64) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	if err := repo.db.WithContext(ctx).First(&imageM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product image")
	}

	return toImageDomain(&imageM), nil
}

func (repo *imageRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductImageModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

func toImageDomain(imageM *model.ProductImageModel) *entity.ProductImage {
	return &entity.ProductImage{
		ID:           imageM.ID,
		ProductID:    imageM.ProductID,
		Key:          imageM.Key,
		URL:          imageM.URL,
		ThumbnailKey: imageM.ThumbnailKey,
		ThumbnailURL: imageM.ThumbnailURL,
		CreatedAt:    imageM.CreatedAt,
	}
}

func fromImageDomain(image *entity.ProductImage) *model.ProductImageModel {
	return &model.ProductImageModel{
		ID:           image.ID,
		ProductID:    image.ProductID,
		Key:          image.Key,
		URL:          image.URL,
		ThumbnailKey: image.ThumbnailKey,
		ThumbnailURL: image.ThumbnailURL,
	}
}
