package impl

import (
	"context"
	"log/slog"
	"strings"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"

	"go.uber.org/fx"
)

const (
	statusSessionExpired = "Session expired. Please login again"
	statusAccessMissing  = "Access token expired or not exists. Please refresh token"
	statusActive         = "The session is currently active now"
	statusTokenExpired   = "The token is expired."
	statusTokenInvalid   = "The token is invalid."
)

type authService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauth        service.OAuthAuthService
	cfg          *config.AuthConfig
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuth        service.OAuthAuthService
	Config       *config.Config
	Logger       *slog.Logger
}

func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauth:        params.OAuth,
		cfg:          params.Config.Auth,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return loggerFor(ctx, srv.logger)
}

// LoginLocal validates a username-or-email and password pair.
func (srv *authService) LoginLocal(ctx context.Context, input usecase.LoginLocalInput) (*usecase.SessionTokens, error) {
	if len(strings.TrimSpace(input.Password)) < srv.cfg.MinPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	user, err := srv.userRepo.FindByLogin(ctx, input.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, loginNotFound(input.UsernameOrEmail)
		}

		return nil, internalError(err, "Error finding the user")
	}

	if user.Method == entity.LoginMethodGoogle {
		return nil, domainerrors.ErrGoogleLoginRequired
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Int64("user_id", user.ID), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return srv.issue(ctx, user)
}

func loginNotFound(usernameOrEmail string) error {
	if strings.Contains(usernameOrEmail, "@") {
		return domainerrors.NewNotFound("The user with email '%s' was not found", usernameOrEmail)
	}

	return domainerrors.NewNotFound("The user with username '%s' was not found", usernameOrEmail)
}

// LoginGoogle signs in with a Google ID token, registering the account on first use.
func (srv *authService) LoginGoogle(ctx context.Context, idToken string) (*usecase.SessionTokens, error) {
	oauthUser, err := srv.oauth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.registerGoogleUser(ctx, oauthUser)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, internalError(err, "Error in the verification if email exists")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return srv.issue(ctx, user)
}

func (srv *authService) registerGoogleUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	role, err := srv.roleRepo.FindByName(ctx, entity.RoleNameUser)
	if err != nil {
		return nil, internalError(err, "Error in the creation of the user in strategy validation")
	}

	user := &entity.User{
		Name:     oauthUser.GivenName,
		Surname:  oauthUser.FamilyName,
		Username: oauthUser.Email,
		Email:    oauthUser.Email,
		Method:   entity.LoginMethodGoogle,
		IsActive: true,
		Roles:    []entity.Role{*role},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil, domainerrors.NewBadRequest("User with '%s' already exists", oauthUser.Email)
		}

		return nil, internalError(err, "Error in the creation of the user in strategy validation")
	}

	srv.log(ctx).Info("Registered user from Google sign-in", slog.Int64("user_id", user.ID))

	return user, nil
}

func (srv *authService) issue(ctx context.Context, user *entity.User) (*usecase.SessionTokens, error) {
	payload := entity.NewTokenPayload(user)

	access, err := srv.tokenService.Sign(payload, srv.cfg.AccessTTL)
	if err != nil {
		return nil, internalError(err, "Error in the creation of the token")
	}
	refresh, err := srv.tokenService.Sign(payload, srv.cfg.RefreshTTL)
	if err != nil {
		return nil, internalError(err, "Error in the creation of the token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID), slog.String("method", user.Method.String()))

	return &usecase.SessionTokens{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// SessionStatus reports whether the cookies still describe a live session.
func (srv *authService) SessionStatus(_ context.Context, accessToken, refreshToken string) *usecase.SessionStatus {
	if refreshToken == "" {
		return &usecase.SessionStatus{Message: statusSessionExpired}
	}
	if accessToken == "" {
		return &usecase.SessionStatus{RefreshTokenExists: true, Message: statusAccessMissing}
	}

	claims, err := srv.tokenService.Verify(accessToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return &usecase.SessionStatus{Message: statusTokenExpired}
		}

		return &usecase.SessionStatus{Message: statusTokenInvalid}
	}

	return &usecase.SessionStatus{
		IsLogged:           true,
		RefreshTokenExists: true,
		Message:            statusActive,
		Payload:            entity.ParseTokenPayload(claims).Payload(),
	}
}

// Refresh issues a new access token with the id, method and roles of the refresh token.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainerrors.ErrRefreshTokenMissing
	}

	claims, err := srv.tokenService.Verify(refreshToken)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrRefreshTokenExpired, err.Error())
	}

	parsed := entity.ParseTokenPayload(claims)
	if !parsed.Valid() {
		return "", errors.Wrap(domainerrors.ErrInvalidRefreshPayload, parsed.Reason())
	}

	source := parsed.Payload()
	access, err := srv.tokenService.Sign(&entity.TokenPayload{
		ID:     source.ID,
		Method: source.Method,
		Roles:  source.Roles,
	}, srv.cfg.AccessTTL)
	if err != nil {
		return "", internalError(err, "Error in the creation of the token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Int64("user_id", source.ID))

	return access, nil
}
