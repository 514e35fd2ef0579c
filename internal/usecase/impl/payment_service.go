package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"
)

// paymentService builds gateway checkout preferences for signed-in buyers.
type paymentService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	productRepo repository.ProductRepository
	products    usecase.ProductUsecase
	gateway     service.PaymentGateway
	ttl         time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

type PaymentServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	ProductRepo repository.ProductRepository
	Products    usecase.ProductUsecase
	Gateway     service.PaymentGateway
	Config      *config.Config
	Logger      *slog.Logger
}

func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		productRepo: params.ProductRepo,
		products:    params.Products,
		gateway:     params.Gateway,
		ttl:         params.Config.Payment.PreferenceTTL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *paymentService) CreatePreference(ctx context.Context, caller *entity.TokenPayload, input usecase.PreferenceInput) (*entity.Preference, error) {
	if caller == nil {
		return nil, domainerrors.ErrNoTokens
	}
	if caller.ID != input.UserID {
		return nil, domainerrors.ErrCallerMismatch
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.UserNotFound(input.UserID)
		}

		return nil, internalError(err, "Error finding the user")
	}

	address, err := ownedAddress(ctx, srv.addressRepo, input.AddressID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := srv.products.ValidateOperation(ctx, input.Items); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	found, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, internalError(err, "Error loading the products")
	}

	items := make([]entity.PreferenceItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, ok := found[item.ProductID]
		if !ok {
			return nil, domainerrors.ProductNotFound(item.ProductID)
		}
		items = append(items, entity.PreferenceItem{
			ID:        product.ID,
			Title:     product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	preference, err := srv.gateway.CreatePreference(ctx, &entity.PreferenceInput{
		User:      user,
		Address:   address,
		Items:     items,
		ExpiresAt: srv.now().Add(srv.ttl),
	})
	if err != nil {
		loggerFor(ctx, srv.logger).Error("Failed to create payment preference",
			slog.Int64("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPreferenceFailed, err.Error())
	}

	loggerFor(ctx, srv.logger).Info("Payment preference created",
		slog.Int64("user_id", user.ID), slog.String("preference_id", preference.ID))

	return preference, nil
}

// ownedAddress loads the address when it is linked to userID. Anything else reads as not owned.
func ownedAddress(ctx context.Context, repo repository.AddressRepository, addressID, userID int64) (*entity.Address, error) {
	owned, err := repo.IsOwnedBy(ctx, addressID, userID)
	if err != nil {
		return nil, internalError(err, "Error finding the address")
	}
	if !owned {
		return nil, domainerrors.AddressNotOwned(addressID)
	}

	address, err := repo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.AddressNotOwned(addressID)
		}

		return nil, internalError(err, "Error finding the address")
	}

	return address, nil
}
