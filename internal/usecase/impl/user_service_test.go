package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	mockRepo "padelpoint/internal/mocks/repository"
	mockSvc "padelpoint/internal/mocks/service"
	"padelpoint/internal/usecase"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type userServiceFixtures struct {
	service      *userService
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	roleRepo     *mockRepo.MockRoleRepository
	addressRepo  *mockRepo.MockAddressRepository
	catalogRepo  *mockRepo.MockCatalogRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		roleRepo:     mockRepo.NewMockRoleRepository(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		catalogRepo:  mockRepo.NewMockCatalogRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		mailer:       mockSvc.NewMockMailer(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		RoleRepo:     f.roleRepo,
		AddressRepo:  f.addressRepo,
		CatalogRepo:  f.catalogRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Mailer:       f.mailer,
		Config:       testConfig(),
		Logger:       discardLogger(),
	}).(*userService)
	f.service.now = func() time.Time { return fixedNow }
	f.service.newCode = func() (string, error) { return "482913", nil }

	return f
}

func createInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:     "Ana",
		Surname:  "Perez",
		Username: "ana",
		Email:    "ana@padel.test",
		Password: "secret-pass",
		IDNumber: "30111222",
		Addresses: []usecase.AddressInput{
			{PostalCode: "1900", Street: "Calle 7", Number: "1234"},
		},
	}
}

func TestUserService_Create_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := createInput()

	f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().FindByIDNumber(ctx, "30111222").Return(nil, repository.ErrUserNotFound)
	f.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(&entity.Role{ID: 2, Name: entity.RoleNameUser}, nil)
	f.hasher.EXPECT().Hash("secret-pass").Return("hashed", nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUsers := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().NewUserRepository().Return(txUsers)
			txUsers.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.PasswordHash == "hashed" && u.Method == entity.LoginMethodLocal &&
					len(u.Addresses) == 1 && u.Addresses[0].Street == "Calle 7" &&
					u.RoleNames()[0] == entity.RoleNameUser
			})).Run(func(_ context.Context, u *entity.User) { u.ID = 7 }).Return(nil)

			return fn(factory)
		})

	user, err := f.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.True(t, user.IsActive)
}

func TestUserService_Create_UniquenessMessages(t *testing.T) {
	ctx := context.Background()
	taken := &entity.User{ID: 99}

	t.Run("email", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").Return(taken, nil)

		_, err := f.service.Create(ctx, createInput())
		assert.Equal(t, "User with 'ana@padel.test' already exists", messageOf(err))
	})

	t.Run("username", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").Return(nil, repository.ErrUserNotFound)
		f.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(taken, nil)

		_, err := f.service.Create(ctx, createInput())
		assert.Equal(t, "User with username 'ana' already exists", messageOf(err))
	})

	t.Run("identification number", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").Return(nil, repository.ErrUserNotFound)
		f.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(nil, repository.ErrUserNotFound)
		f.userRepo.EXPECT().FindByIDNumber(ctx, "30111222").Return(taken, nil)

		_, err := f.service.Create(ctx, createInput())
		assert.Equal(t, "User with identification number '30111222' already exists", messageOf(err))
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
	})
}

func TestUserService_Update_ChecksOtherUsersOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("email held by another user", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, Email: "ana@padel.test"}, nil)
		f.userRepo.EXPECT().FindByEmail(ctx, "luis@padel.test").Return(&entity.User{ID: 8}, nil)

		email := "luis@padel.test"
		_, err := f.service.Update(ctx, userCaller(7), 7, usecase.UpdateUserInput{Email: &email})
		assert.Equal(t, "The email 'luis@padel.test' is currently in use", messageOf(err))
	})

	t.Run("unchanged values are not re-checked", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, Email: "ana@padel.test", Name: "Ana"}, nil)
		f.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "Anita" })).Return(nil)

		email, name := "ana@padel.test", "Anita"
		user, err := f.service.Update(ctx, userCaller(7), 7, usecase.UpdateUserInput{Email: &email, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Anita", user.Name)
	})

	t.Run("another user's profile", func(t *testing.T) {
		f := createTestUserService(t)

		_, err := f.service.Update(ctx, userCaller(7), 8, usecase.UpdateUserInput{})
		assert.Equal(t, "User ID '8' does not match the token ID", messageOf(err))
	})
}

func TestUserService_Addresses_TokenMismatch(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.Addresses(context.Background(), userCaller(7), 8)

	assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
	assert.Equal(t, "User ID '8' does not match the token ID", messageOf(err))
}

func TestUserService_RequestPasswordReset(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: 7, Name: "Ana", Surname: "Perez", Email: "ana@padel.test"}

	f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(user, nil)
	f.userRepo.EXPECT().SetPasswordResetCode(ctx, int64(7), "482913", fixedNow.Add(2*time.Minute)).Return(nil)
	f.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(msg *service.MailMessage) bool {
		return msg.To == "ana@padel.test" && msg.ToName == "Ana Perez" &&
			msg.Subject == "Padel point - Código de verificación" &&
			strings.Contains(msg.HTML, "482913") && strings.Contains(msg.Text, "482913")
	})).Return(nil)

	require.NoError(t, f.service.RequestPasswordReset(ctx, "ana"))
}

func TestUserService_RequestPasswordReset_MailFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(&entity.User{ID: 7, Email: "ana@padel.test"}, nil)
	f.userRepo.EXPECT().SetPasswordResetCode(ctx, int64(7), "482913", mock.Anything).Return(nil)
	f.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp 421"))

	err := f.service.RequestPasswordReset(ctx, "ana")

	assert.Equal(t, http.StatusBadRequest, httpCodeOf(err))
}

func TestUserService_ValidateResetCode(t *testing.T) {
	ctx := context.Background()
	later := fixedNow.Add(time.Minute)
	earlier := fixedNow.Add(-time.Second)

	t.Run("incorrect code", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").
			Return(&entity.User{ID: 7, PasswordResetCode: "482913", PasswordResetExpiresAt: &later}, nil)

		_, err := f.service.ValidateResetCode(ctx, "111111", "ana@padel.test")
		require.ErrorIs(t, err, domainerrors.ErrResetCodeIncorrect)
	})

	t.Run("expired code", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").
			Return(&entity.User{ID: 7, PasswordResetCode: "482913", PasswordResetExpiresAt: &earlier}, nil)

		_, err := f.service.ValidateResetCode(ctx, "482913", "ana@padel.test")
		require.ErrorIs(t, err, domainerrors.ErrResetCodeExpired)
	})

	t.Run("no code requested", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").Return(&entity.User{ID: 7}, nil)

		_, err := f.service.ValidateResetCode(ctx, "", "ana@padel.test")
		require.ErrorIs(t, err, domainerrors.ErrResetCodeIncorrect)
	})

	t.Run("valid code yields a reset token", func(t *testing.T) {
		f := createTestUserService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ana@padel.test").
			Return(&entity.User{ID: 7, PasswordResetCode: "482913", PasswordResetExpiresAt: &later}, nil)
		f.tokenService.EXPECT().SignPasswordReset(int64(7), 5*time.Minute).Return("reset-jwt", nil)

		token, err := f.service.ValidateResetCode(ctx, "482913", "ana@padel.test")
		require.NoError(t, err)
		assert.Equal(t, "reset-jwt", token)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	f.hasher.EXPECT().Hash("brand-new-pass").Return("new-hash", nil)
	f.userRepo.EXPECT().UpdatePassword(ctx, int64(7), "new-hash").Return(nil)

	require.NoError(t, f.service.ResetPassword(ctx, 7, "brand-new-pass"))
}

func TestUserService_Remove_Deactivates(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7, IsActive: true}, nil)
	f.userRepo.EXPECT().Deactivate(ctx, int64(7)).Return(nil)

	user, err := f.service.Remove(ctx, 7)

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestRandomResetCode_SixDigits(t *testing.T) {
	for range 50 {
		code, err := randomResetCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.NotEqual(t, byte('0'), code[0])
	}
}
