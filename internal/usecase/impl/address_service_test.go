package impl

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/repository"
	mockRepo "padelpoint/internal/mocks/repository"
	"padelpoint/internal/usecase"
)

func createTestAddressService(t *testing.T) (usecase.AddressUsecase, *mockRepo.MockAddressRepository, *mockRepo.MockUserRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewAddressService(AddressServiceParams{
		AddressRepo: addressRepo,
		UserRepo:    userRepo,
		Logger:      discardLogger(),
	}), addressRepo, userRepo
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()
	input := usecase.AddressInput{PostalCode: "1900", Street: "Calle 7", Number: "1234"}

	t.Run("own address", func(t *testing.T) {
		service, addressRepo, userRepo := createTestAddressService(t)
		userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
		addressRepo.EXPECT().Create(ctx, int64(7), mock.Anything).
			Run(func(_ context.Context, _ int64, a *entity.Address) { a.ID = 11 }).Return(nil)

		address, err := service.Create(ctx, userCaller(7), 7, input)
		require.NoError(t, err)
		assert.Equal(t, int64(11), address.ID)
		assert.Equal(t, "Calle 7", address.Street)
	})

	t.Run("for another user", func(t *testing.T) {
		service, _, _ := createTestAddressService(t)

		_, err := service.Create(ctx, userCaller(7), 8, input)
		assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		service, _, userRepo := createTestAddressService(t)
		userRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrUserNotFound)

		_, err := service.Create(ctx, adminCaller(1), 8, input)
		assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
	})
}

func TestAddressService_ForeignAddressLooksMissing(t *testing.T) {
	service, addressRepo, _ := createTestAddressService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Address{ID: 3}, nil)
	addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(false, nil)

	_, err := service.FindByID(ctx, userCaller(7), 3)

	assert.Equal(t, "The address with id '3' was not found", messageOf(err))
}

func TestAddressService_AdminBypassesOwnership(t *testing.T) {
	service, addressRepo, _ := createTestAddressService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Address{ID: 3, Street: "Old"}, nil)
	addressRepo.EXPECT().Update(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.Street == "New" })).Return(nil)

	address, err := service.Update(ctx, adminCaller(1), 3, usecase.AddressInput{PostalCode: "1", Street: "New", Number: "2"})

	require.NoError(t, err)
	assert.Equal(t, "New", address.Street)
}

func TestAddressService_Remove(t *testing.T) {
	service, addressRepo, _ := createTestAddressService(t)
	ctx := context.Background()

	addressRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Address{ID: 3}, nil)
	addressRepo.EXPECT().IsOwnedBy(ctx, int64(3), int64(7)).Return(true, nil)
	addressRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

	_, err := service.Remove(ctx, userCaller(7), 3)

	require.NoError(t, err)
}
