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

const userAddressesTable = "user_addresses"

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address and links it to the user.
func (repo *addressRepository) Create(ctx context.Context, userID int64, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	db := repo.db.WithContext(ctx)

	if err := db.Omit("Users").Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	link := map[string]any{"user_id": userID, "address_id": addressM.ID}
	if err := db.Table(userAddressesTable).Create(link).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link address to user")
	}

	address.ID = addressM.ID

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).First(&addressM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	var addressModels []model.AddressModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN user_addresses ON user_addresses.address_id = addresses.id").
		Where("user_addresses.user_id = ?", userID).
		Order("addresses.id").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

func (repo *addressRepository) IsOwnedBy(ctx context.Context, addressID, userID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Table(userAddressesTable).
		Where("address_id = ? AND user_id = ?", addressID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check address ownership")
	}

	return count > 0, nil
}

// Update updates an existing address record.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{ID: address.ID}).
		Select("postal_code", "address_street", "address_number").
		Updates(fromAddressDomain(address))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete unlinks the address from every user and removes it.
func (repo *addressRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM user_addresses WHERE address_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlink address")
	}

	result := db.Delete(&model.AddressModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewConflict("The address with id '%d' is used by an order", id)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func toAddressDomain(addressM *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         addressM.ID,
		PostalCode: addressM.PostalCode,
		Street:     addressM.AddressStreet,
		Number:     addressM.AddressNumber,
	}
}

func fromAddressDomain(address *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:            address.ID,
		PostalCode:    address.PostalCode,
		AddressStreet: address.Street,
		AddressNumber: address.Number,
	}
}
