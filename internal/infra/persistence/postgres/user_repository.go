package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) preloaded(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("roles.id") }).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB { return db.Order("addresses.id") }).
		Preload("IDType")
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.preloaded(ctx).Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindByID skips deactivated users; the uniqueness lookups below do not.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "users.id = ? AND users.is_active = ?", id, true)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "users.email = ?", email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "users.username = ?", username)
}

func (repo *userRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "users.id_number = ?", idNumber)
}

func (repo *userRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	return repo.findOne(ctx, "users.username = ? OR users.email = ?", usernameOrEmail, usernameOrEmail)
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := repo.preloaded(ctx).Order("users.id").Find(&userModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

// Create inserts the user, links existing roles and inserts its new addresses.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Omit("Roles.*").
		Create(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserConflict, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	for i := range user.Addresses {
		if i < len(userM.Addresses) {
			user.Addresses[i].ID = userM.Addresses[i].ID
		}
	}

	return nil
}

// Update saves the profile columns. Roles, addresses and credentials have dedicated operations.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("name", "surname", "username", "email", "phone", "id_type_id", "id_number").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrUserConflict, result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Deactivate(ctx context.Context, id int64) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_active": false})
}

func (repo *userRepository) SetPasswordResetCode(ctx context.Context, id int64, code string, expiresAt time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"password_reset_code":       code,
		"password_reset_expires_at": expiresAt,
	})
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"password":                  passwordHash,
		"password_reset_code":       "",
		"password_reset_expires_at": nil,
	})
}

func (repo *userRepository) updateColumns(ctx context.Context, id int64, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:                     userM.ID,
		Name:                   userM.Name,
		Surname:                userM.Surname,
		Username:               userM.Username,
		Email:                  userM.Email,
		Phone:                  userM.Phone,
		Method:                 entity.LoginMethod(userM.Method),
		IsActive:               userM.IsActive,
		PasswordHash:           userM.Password,
		PasswordResetCode:      userM.PasswordResetCode,
		PasswordResetExpiresAt: userM.PasswordResetExpiresAt,
		CreatedAt:              userM.CreatedAt,
		UpdatedAt:              userM.UpdatedAt,
	}
	if userM.IDNumber != nil {
		user.IDNumber = *userM.IDNumber
	}
	if userM.IDType != nil {
		user.IDType = &entity.CatalogItem{ID: userM.IDType.ID, Name: userM.IDType.Name}
	} else if userM.IDTypeID != nil {
		user.IDType = &entity.CatalogItem{ID: *userM.IDTypeID}
	}

	user.Roles = make([]entity.Role, 0, len(userM.Roles))
	for _, roleM := range userM.Roles {
		user.Roles = append(user.Roles, entity.Role{ID: roleM.ID, Name: roleM.Name})
	}

	user.Addresses = make([]entity.Address, 0, len(userM.Addresses))
	for i := range userM.Addresses {
		user.Addresses = append(user.Addresses, *toAddressDomain(&userM.Addresses[i]))
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:                     user.ID,
		Name:                   user.Name,
		Surname:                user.Surname,
		Username:               user.Username,
		Email:                  user.Email,
		Phone:                  user.Phone,
		Method:                 user.Method.String(),
		IsActive:               user.IsActive,
		Password:               user.PasswordHash,
		PasswordResetCode:      user.PasswordResetCode,
		PasswordResetExpiresAt: user.PasswordResetExpiresAt,
	}
	if user.IDNumber != "" {
		idNumber := user.IDNumber
		userM.IDNumber = &idNumber
	}
	if user.IDType != nil {
		idTypeID := user.IDType.ID
		userM.IDTypeID = &idTypeID
	}

	for _, role := range user.Roles {
		userM.Roles = append(userM.Roles, model.RoleModel{ID: role.ID, Name: role.Name})
	}
	for i := range user.Addresses {
		userM.Addresses = append(userM.Addresses, *fromAddressDomain(&user.Addresses[i]))
	}

	return userM
}
