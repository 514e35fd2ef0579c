package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/errors"
	mockRepo "padelpoint/internal/mocks/repository"
	mockSvc "padelpoint/internal/mocks/service"
	mockUsecase "padelpoint/internal/mocks/usecase"
	"padelpoint/internal/usecase"
)

type paymentServiceFixtures struct {
	service     *paymentService
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	productRepo *mockRepo.MockProductRepository
	products    *mockUsecase.MockProductUsecase
	gateway     *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	f := paymentServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		products:    mockUsecase.NewMockProductUsecase(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
	}
	f.service = NewPaymentService(PaymentServiceParams{
		UserRepo:    f.userRepo,
		AddressRepo: f.addressRepo,
		ProductRepo: f.productRepo,
		Products:    f.products,
		Gateway:     f.gateway,
		Config:      testConfig(),
		Logger:      discardLogger(),
	}).(*paymentService)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

func preferenceInput() usecase.PreferenceInput {
	return usecase.PreferenceInput{
		UserID:    7,
		AddressID: 3,
		Items:     []entity.StockLine{{ProductID: 1, Quantity: 2}},
	}
}

func TestPaymentService_CreatePreference_Success(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	input := preferenceInput()
	user := &entity.User{ID: 7, Name: "Ana"}
	address := &entity.Address{ID: 3, Street: "Calle 7"}

	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(user, nil)
	f.addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(true, nil)
	f.addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(address, nil)
	f.products.EXPECT().ValidateOperation(ctx, input.Items).Return(nil)
	f.productRepo.EXPECT().FindByIDs(ctx, []int64{1}).Return(map[int64]*entity.Product{1: racket()}, nil)
	f.gateway.EXPECT().CreatePreference(ctx, mock.MatchedBy(func(in *entity.PreferenceInput) bool {
		return in.User == user && in.Address == address && len(in.Items) == 1 &&
			in.Items[0].Title == "Vertex" && in.Items[0].UnitPrice == 100 && in.Items[0].Quantity == 2 &&
			in.ExpiresAt.Equal(fixedNow.Add(15*time.Minute))
	})).Return(&entity.Preference{ID: "pref-1", InitPoint: "https://mp.test/checkout"}, nil)

	preference, err := f.service.CreatePreference(ctx, userCaller(7), input)

	require.NoError(t, err)
	assert.Equal(t, "pref-1", preference.ID)
}

func TestPaymentService_CreatePreference_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("no caller", func(t *testing.T) {
		f := createTestPaymentService(t)

		_, err := f.service.CreatePreference(ctx, nil, preferenceInput())
		require.ErrorIs(t, err, domainerrors.ErrNoTokens)
	})

	t.Run("caller is another user", func(t *testing.T) {
		f := createTestPaymentService(t)

		_, err := f.service.CreatePreference(ctx, adminCaller(1), preferenceInput())
		require.ErrorIs(t, err, domainerrors.ErrCallerMismatch)
		assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
	})

	t.Run("address of another user", func(t *testing.T) {
		f := createTestPaymentService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
		f.addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(false, nil)

		_, err := f.service.CreatePreference(ctx, userCaller(7), preferenceInput())
		assert.Equal(t, "The address with id '3' was not register with the user or not exists", messageOf(err))
	})

	t.Run("stock validation fails", func(t *testing.T) {
		f := createTestPaymentService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
		f.addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(true, nil)
		f.addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Address{ID: 3}, nil)
		f.products.EXPECT().ValidateOperation(ctx, mock.Anything).
			Return(domainerrors.NewBadRequest("There is not enough stock of the product with id '%d' to carry out the operation", 1))

		_, err := f.service.CreatePreference(ctx, userCaller(7), preferenceInput())
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := createTestPaymentService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
		f.addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(true, nil)
		f.addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Address{ID: 3}, nil)
		f.products.EXPECT().ValidateOperation(ctx, mock.Anything).Return(nil)
		f.productRepo.EXPECT().FindByIDs(ctx, []int64{1}).Return(map[int64]*entity.Product{1: racket()}, nil)
		f.gateway.EXPECT().CreatePreference(ctx, mock.Anything).Return(nil, errors.New("status 400"))

		_, err := f.service.CreatePreference(ctx, userCaller(7), preferenceInput())
		require.ErrorIs(t, err, domainerrors.ErrPreferenceFailed)
		assert.Equal(t, "Error in the creation of the embeded form", messageOf(err))
	})
}
