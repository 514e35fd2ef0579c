package postgres

import (
	"context"

	"gorm.io/gorm"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/model"
)

// catalogRow is the shape shared by every lookup table.
type catalogRow struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

// catalogRepository serves brands, suppliers, product types and id types from one implementation.
type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func tableFor(kind entity.CatalogKind) (string, error) {
	var m model.CatalogModel
	switch kind {
	case entity.CatalogBrand:
		m = model.BrandModel{}
	case entity.CatalogSupplier:
		m = model.SupplierModel{}
	case entity.CatalogProductType:
		m = model.ProductTypeModel{}
	case entity.CatalogIDType:
		m = model.IDTypeModel{}
	default:
		return "", errors.Errorf("unknown catalog kind %q", kind)
	}

	return m.TableName(), nil
}

func (repo *catalogRepository) table(ctx context.Context, kind entity.CatalogKind) (*gorm.DB, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	return repo.db.WithContext(ctx).Table(table), nil
}

func (repo *catalogRepository) Create(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return err
	}

	row := catalogRow{Name: item.Name}
	if err := db.Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCatalogNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+kind.String())
	}

	item.ID = row.ID

	return nil
}

func (repo *catalogRepository) List(ctx context.Context, kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var rows []catalogRow
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+kind.String())
	}

	items := make([]*entity.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.CatalogItem{ID: row.ID, Name: row.Name})
	}

	return items, nil
}

func (repo *catalogRepository) FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogItem, error) {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return nil, err
	}

	var row catalogRow
	if err := db.Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+kind.String())
	}

	return &entity.CatalogItem{ID: row.ID, Name: row.Name}, nil
}

func (repo *catalogRepository) Update(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", item.ID).Update("name", item.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCatalogNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+kind.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}

func (repo *catalogRepository) Delete(ctx context.Context, kind entity.CatalogKind, id int64) error {
	db, err := repo.table(ctx, kind)
	if err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&catalogRow{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewConflict("The %s with id '%d' is still in use", kind, id)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+kind.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}
