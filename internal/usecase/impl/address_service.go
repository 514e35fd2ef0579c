package impl

import (
	"context"
	"log/slog"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"

	"go.uber.org/fx"
)

type addressService struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) Create(ctx context.Context, caller *entity.TokenPayload, userID int64, input usecase.AddressInput) (*entity.Address, error) {
	if err := ensureSelfOrAdmin(caller, userID); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.UserNotFound(userID)
		}

		return nil, internalError(err, "Error saving the address")
	}

	address := input.Entity()
	if err := srv.addressRepo.Create(ctx, userID, &address); err != nil {
		return nil, internalError(err, "Error saving the address")
	}

	loggerFor(ctx, srv.logger).Info("Address created", slog.Int64("user_id", userID), slog.Int64("address_id", address.ID))

	return &address, nil
}

// owned loads the address when the caller may act on it. Foreign addresses look missing to non-admins.
func (srv *addressService) owned(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Address, error) {
	if caller == nil {
		return nil, domainerrors.ErrNoTokens
	}

	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.NewNotFound("The address with id '%d' was not found", id)
		}

		return nil, internalError(err, "Error finding the address")
	}

	if isAdmin(caller) {
		return address, nil
	}

	ok, err := srv.addressRepo.IsOwnedBy(ctx, id, caller.ID)
	if err != nil {
		return nil, internalError(err, "Error finding the address")
	}
	if !ok {
		return nil, domainerrors.NewNotFound("The address with id '%d' was not found", id)
	}

	return address, nil
}

func (srv *addressService) FindByID(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Address, error) {
	return srv.owned(ctx, caller, id)
}

func (srv *addressService) Update(ctx context.Context, caller *entity.TokenPayload, id int64, input usecase.AddressInput) (*entity.Address, error) {
	address, err := srv.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	address.PostalCode = input.PostalCode
	address.Street = input.Street
	address.Number = input.Number
	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, internalError(err, "Error updating the address")
	}

	return address, nil
}

func (srv *addressService) Remove(ctx context.Context, caller *entity.TokenPayload, id int64) (*entity.Address, error) {
	address, err := srv.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		return nil, internalError(err, "Error deleting the address")
	}

	loggerFor(ctx, srv.logger).Info("Address deleted", slog.Int64("address_id", id))

	return address, nil
}
