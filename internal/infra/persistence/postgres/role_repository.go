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

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&roleModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, &entity.Role{ID: roleM.ID, Name: roleM.Name})
	}

	return roles, nil
}

func (repo *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return repo.findOne(ctx, "name = ?", name)
}

func (repo *roleRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find role")
	}

	return &entity.Role{ID: roleM.ID, Name: roleM.Name}, nil
}

func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Update("name", role.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.NewBadRequest("The role '%s' already exists", role.Name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

func (repo *roleRepository) EnsureExists(ctx context.Context, name string) (*entity.Role, error) {
	roleM := model.RoleModel{Name: name}
	if err := repo.db.WithContext(ctx).Where(model.RoleModel{Name: name}).FirstOrCreate(&roleM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return &entity.Role{ID: roleM.ID, Name: roleM.Name}, nil
}
