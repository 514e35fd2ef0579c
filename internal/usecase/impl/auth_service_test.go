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
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	mockRepo "padelpoint/internal/mocks/repository"
	mockSvc "padelpoint/internal/mocks/service"
	"padelpoint/internal/usecase"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	roleRepo     *mockRepo.MockRoleRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauth        *mockSvc.MockOAuthAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		roleRepo:     mockRepo.NewMockRoleRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		oauth:        mockSvc.NewMockOAuthAuthService(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		UserRepo:     f.userRepo,
		RoleRepo:     f.roleRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		OAuth:        f.oauth,
		Config:       testConfig(),
		Logger:       discardLogger(),
	})

	return f
}

func localUser() *entity.User {
	return &entity.User{
		ID:           7,
		Username:     "ana",
		Email:        "ana@padel.test",
		Method:       entity.LoginMethodLocal,
		IsActive:     true,
		PasswordHash: "hashed",
		Roles:        []entity.Role{{ID: 2, Name: entity.RoleNameUser}},
	}
}

func TestAuthService_LoginLocal_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	user := localUser()

	f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(user, nil)
	f.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
	f.tokenService.EXPECT().Sign(mock.AnythingOfType("*entity.TokenPayload"), time.Hour).Return("access", nil)
	f.tokenService.EXPECT().Sign(mock.AnythingOfType("*entity.TokenPayload"), 2*time.Hour).Return("refresh", nil)

	tokens, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, user.ID, tokens.User.ID)
}

func TestAuthService_LoginLocal_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("short password never reaches the store", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "  short  "})
		require.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByLogin(ctx, "who@padel.test").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "who@padel.test", Password: "secret-pass"})
		assert.Equal(t, http.StatusNotFound, httpCodeOf(err))
		assert.Equal(t, "The user with email 'who@padel.test' was not found", messageOf(err))
	})

	t.Run("unknown username", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByLogin(ctx, "who").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "who", Password: "secret-pass"})
		assert.Equal(t, "The user with username 'who' was not found", messageOf(err))
	})

	t.Run("google account", func(t *testing.T) {
		f := createTestAuthService(t)
		user := localUser()
		user.Method = entity.LoginMethodGoogle
		f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(user, nil)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "secret-pass"})
		require.ErrorIs(t, err, domainerrors.ErrGoogleLoginRequired)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(localUser(), nil)
		f.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "wrong-pass"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := createTestAuthService(t)
		user := localUser()
		user.IsActive = false
		f.userRepo.EXPECT().FindByLogin(ctx, "ana").Return(user, nil)
		f.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)

		_, err := f.service.LoginLocal(ctx, usecase.LoginLocalInput{UsernameOrEmail: "ana", Password: "secret-pass"})
		require.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})
}

func TestAuthService_LoginGoogle_RegistersOnFirstLogin(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.oauth.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		Subject:    "g-1",
		Email:      "new@padel.test",
		GivenName:  "Nico",
		FamilyName: "Diaz",
	}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "new@padel.test").Return(nil, repository.ErrUserNotFound)
	f.roleRepo.EXPECT().FindByName(ctx, entity.RoleNameUser).Return(&entity.Role{ID: 2, Name: entity.RoleNameUser}, nil)
	f.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Method == entity.LoginMethodGoogle && u.Username == "new@padel.test" && u.IsActive
	})).Run(func(_ context.Context, u *entity.User) {
		u.ID = 11
	}).Return(nil)
	f.tokenService.EXPECT().Sign(mock.MatchedBy(func(p *entity.TokenPayload) bool {
		return p.ID == 11 && p.Method == entity.LoginMethodGoogle
	}), mock.Anything).Return("token", nil).Times(2)

	tokens, err := f.service.LoginGoogle(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, int64(11), tokens.User.ID)
}

func TestAuthService_LoginGoogle_VerificationFailure(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	f.oauth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("audience mismatch"))

	_, err := f.service.LoginGoogle(ctx, "bad")
	require.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_SessionStatus(t *testing.T) {
	ctx := context.Background()
	validClaims := entity.TokenClaims{
		"id":     float64(7),
		"method": "local",
		"roles":  []any{map[string]any{"id": float64(2), "name": "user"}},
	}

	tests := []struct {
		name      string
		access    string
		refresh   string
		verifyErr error
		logged    bool
		refreshOK bool
		message   string
	}{
		{name: "no refresh cookie", access: "a", message: "Session expired. Please login again"},
		{name: "no access cookie", refresh: "r", refreshOK: true, message: "Access token expired or not exists. Please refresh token"},
		{name: "expired access", access: "a", refresh: "r", verifyErr: service.ErrTokenExpired, message: "The token is expired."},
		{name: "tampered access", access: "a", refresh: "r", verifyErr: service.ErrTokenInvalid, message: "The token is invalid."},
		{name: "active", access: "a", refresh: "r", logged: true, refreshOK: true, message: "The session is currently active now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthService(t)
			if tt.access != "" && tt.refresh != "" {
				if tt.verifyErr != nil {
					f.tokenService.EXPECT().Verify(tt.access).Return(nil, tt.verifyErr)
				} else {
					f.tokenService.EXPECT().Verify(tt.access).Return(validClaims, nil)
				}
			}

			status := f.service.SessionStatus(ctx, tt.access, tt.refresh)

			assert.Equal(t, tt.logged, status.IsLogged)
			assert.Equal(t, tt.refreshOK, status.RefreshTokenExists)
			assert.Equal(t, tt.message, status.Message)
			if tt.logged {
				require.NotNil(t, status.Payload)
				assert.Equal(t, int64(7), status.Payload.ID)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("missing refresh token", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.service.Refresh(ctx, "")
		require.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
		assert.Equal(t, "any refresh token, please login again", messageOf(err))
	})

	t.Run("expired refresh token", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().Verify("old").Return(nil, service.ErrTokenExpired)

		_, err := f.service.Refresh(ctx, "old")
		require.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
	})

	t.Run("structurally invalid payload", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().Verify("forged").Return(entity.TokenClaims{
			"id":     float64(-1),
			"method": "",
			"roles":  []any{},
		}, nil)

		_, err := f.service.Refresh(ctx, "forged")
		require.ErrorIs(t, err, domainerrors.ErrInvalidRefreshPayload)
		assert.Equal(t, "Invalid refresh token payload.", messageOf(err))
		assert.Equal(t, http.StatusUnauthorized, httpCodeOf(err))
	})

	t.Run("copies id, method and roles", func(t *testing.T) {
		f := createTestAuthService(t)
		f.tokenService.EXPECT().Verify("good").Return(entity.TokenClaims{
			"id":     float64(7),
			"method": "google",
			"roles":  []any{map[string]any{"id": float64(1), "name": "admin"}},
		}, nil)
		f.tokenService.EXPECT().Sign(mock.MatchedBy(func(p *entity.TokenPayload) bool {
			return p.ID == 7 && p.Method == entity.LoginMethodGoogle &&
				len(p.Roles) == 1 && p.Roles[0].Name == entity.RoleNameAdmin
		}), time.Hour).Return("fresh", nil)

		token, err := f.service.Refresh(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)
	})
}
