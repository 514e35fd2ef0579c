package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/repository"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
	"padelpoint/internal/usecase"

	"go.uber.org/fx"
)

const resetCodeSubject = "Padel point - Código de verificación"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	addressRepo  repository.AddressRepository
	catalogRepo  repository.CatalogRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	cfg          *config.AuthConfig
	logger       *slog.Logger

	now     func() time.Time
	newCode func() (string, error)
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	AddressRepo  repository.AddressRepository
	CatalogRepo  repository.CatalogRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		addressRepo:  params.AddressRepo,
		catalogRepo:  params.CatalogRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		cfg:          params.Config.Auth,
		logger:       params.Logger,
		now:          time.Now,
		newCode:      randomResetCode,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return loggerFor(ctx, srv.logger)
}

// randomResetCode returns a uniformly drawn 6-digit code.
func randomResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (srv *userService) checkPassword(password string) error {
	if len(strings.TrimSpace(password)) < srv.cfg.MinPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	return nil
}

// Create registers a local user with the user role and its initial addresses.
func (srv *userService) Create(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.checkPassword(input.Password); err != nil {
		return nil, err
	}

	if err := srv.ensureUnique(ctx, 0, input.Email, input.Username, input.IDNumber, createConflictMessages); err != nil {
		return nil, err
	}

	idType, err := srv.resolveIDType(ctx, input.IDTypeID)
	if err != nil {
		return nil, err
	}

	role, err := srv.roleRepo.FindByName(ctx, entity.RoleNameUser)
	if err != nil {
		return nil, internalError(err, "Error saving the user created")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, internalError(err, "Error saving the user created")
	}

	user := &entity.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		IDType:       idType,
		IDNumber:     input.IDNumber,
		Method:       entity.LoginMethodLocal,
		IsActive:     true,
		Roles:        []entity.Role{*role},
		PasswordHash: hash,
	}
	for _, address := range input.Addresses {
		user.Addresses = append(user.Addresses, address.Entity())
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			// Lost a race against a concurrent registration.
			return nil, domainerrors.NewBadRequest("User with '%s' already exists", input.Email)
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, internalError(err, "Error saving the user created")
	}

	srv.log(ctx).Info("User created", slog.Int64("user_id", user.ID))

	return user, nil
}

type conflictMessages struct {
	email    string
	username string
	idNumber string
}

var (
	createConflictMessages = conflictMessages{
		email:    "User with '%s' already exists",
		username: "User with username '%s' already exists",
		idNumber: "User with identification number '%s' already exists",
	}
	updateConflictMessages = conflictMessages{
		email:    "The email '%s' is currently in use",
		username: "The username '%s' is currently in use",
		idNumber: "The idNumber '%s' is currently in use",
	}
)

// ensureUnique rejects unique values already held by a user other than selfID. Empty values are skipped.
func (srv *userService) ensureUnique(ctx context.Context, selfID int64, email, username, idNumber string, msgs conflictMessages) error {
	checks := []struct {
		value   string
		find    func(context.Context, string) (*entity.User, error)
		message string
		errMsg  string
	}{
		{email, srv.userRepo.FindByEmail, msgs.email, "Error in the verification if email exists"},
		{username, srv.userRepo.FindByUsername, msgs.username, "Error in the verification if username exists"},
		{idNumber, srv.userRepo.FindByIDNumber, msgs.idNumber, "Error in the verification if identification number exists"},
	}

	for _, check := range checks {
		if check.value == "" {
			continue
		}

		existing, err := check.find(ctx, check.value)
		if errors.Is(err, repository.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return internalError(err, check.errMsg)
		}
		if existing.ID != selfID {
			return domainerrors.NewBadRequest(check.message, check.value)
		}
	}

	return nil
}

func (srv *userService) resolveIDType(ctx context.Context, id *int64) (*entity.CatalogItem, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // no identification type given
	}

	item, err := srv.catalogRepo.FindByID(ctx, entity.CatalogIDType, *id)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, domainerrors.NewNotFound("The %s with id '%d' was not found", entity.CatalogIDType, *id)
		}

		return nil, internalError(err, "Error finding the id type")
	}

	return item, nil
}

func (srv *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, internalError(err, "Error finding the users in the db")
	}

	return users, nil
}

func (srv *userService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.UserNotFound(id)
		}

		return nil, internalError(err, fmt.Sprintf("Error finding the user with id '%d'", id))
	}

	return user, nil
}

func (srv *userService) FindAuthenticated(ctx context.Context, caller *entity.TokenPayload) (*entity.User, error) {
	if caller == nil {
		return nil, domainerrors.ErrNoTokens
	}

	return srv.FindByID(ctx, caller.ID)
}

// Update applies the non-nil fields after re-checking uniqueness against other users.
func (srv *userService) Update(ctx context.Context, caller *entity.TokenPayload, id int64, input usecase.UpdateUserInput) (*entity.User, error) {
	if err := ensureSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}

	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = srv.ensureUnique(ctx, id, changed(input.Email, user.Email), changed(input.Username, user.Username),
		changed(input.IDNumber, user.IDNumber), updateConflictMessages)
	if err != nil {
		return nil, err
	}

	if input.IDTypeID != nil {
		if user.IDType, err = srv.resolveIDType(ctx, input.IDTypeID); err != nil {
			return nil, err
		}
	}
	assign(&user.Name, input.Name)
	assign(&user.Surname, input.Surname)
	assign(&user.Username, input.Username)
	assign(&user.Email, input.Email)
	assign(&user.Phone, input.Phone)
	assign(&user.IDNumber, input.IDNumber)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil, domainerrors.NewBadRequest("The email '%s' is currently in use", user.Email)
		}

		return nil, internalError(err, "Error in the updating of the user")
	}

	return user, nil
}

// changed returns the new value when it differs from current, else "".
func changed(next *string, current string) string {
	if next == nil || *next == current {
		return ""
	}

	return *next
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (srv *userService) Remove(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Deactivate(ctx, id); err != nil {
		return nil, internalError(err, fmt.Sprintf("Error in removing proccess of the user with id '%d'", id))
	}
	user.IsActive = false

	srv.log(ctx).Info("User deactivated", slog.Int64("user_id", id))

	return user, nil
}

func (srv *userService) Addresses(ctx context.Context, caller *entity.TokenPayload, id int64) ([]*entity.Address, error) {
	if err := ensureSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}

	if _, err := srv.FindByID(ctx, id); err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, internalError(err, "Error loading the addresses saved")
	}

	return addresses, nil
}

// RequestPasswordReset stores a fresh code on the user and mails it.
func (srv *userService) RequestPasswordReset(ctx context.Context, usernameOrEmail string) error {
	user, err := srv.userRepo.FindByLogin(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return loginNotFound(usernameOrEmail)
		}

		return internalError(err, "Error finding the user")
	}

	code, err := srv.newCode()
	if err != nil {
		return internalError(err, "Error saving the reset password tokens")
	}

	expiresAt := srv.now().Add(srv.cfg.ResetCodeTTL)
	if err := srv.userRepo.SetPasswordResetCode(ctx, user.ID, code, expiresAt); err != nil {
		return internalError(err, "Error saving the reset password tokens")
	}

	html, text, err := renderResetCode(code, srv.cfg.ResetCodeTTL)
	if err != nil {
		return internalError(err, "Error sending the reset password email")
	}

	err = srv.mailer.Send(ctx, &service.MailMessage{
		To:      user.Email,
		ToName:  strings.TrimSpace(user.Name + " " + user.Surname),
		Subject: resetCodeSubject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send reset code", slog.Int64("user_id", user.ID), slog.Any("error", err))

		return internalError(err, "Error sending the reset password email")
	}

	srv.log(ctx).Info("Password reset code sent", slog.Int64("user_id", user.ID))

	return nil
}

// ValidateResetCode returns a password-reset token when code matches and has not expired.
func (srv *userService) ValidateResetCode(ctx context.Context, code, email string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.NewNotFound("The user with email '%s' was not found", email)
		}

		return "", internalError(err, fmt.Sprintf("Error finding the user with email '%s'", email))
	}

	if user.PasswordResetCode == "" || subtle.ConstantTimeCompare([]byte(user.PasswordResetCode), []byte(code)) != 1 {
		return "", domainerrors.ErrResetCodeIncorrect
	}
	if user.PasswordResetExpiresAt == nil || user.PasswordResetExpiresAt.Before(srv.now()) {
		return "", domainerrors.ErrResetCodeExpired
	}

	token, err := srv.tokenService.SignPasswordReset(user.ID, srv.cfg.PasswordResetTTL)
	if err != nil {
		return "", internalError(err, "Error in the creation of the token")
	}

	return token, nil
}

func (srv *userService) ResetPassword(ctx context.Context, userID int64, newPassword string) error {
	if err := srv.checkPassword(newPassword); err != nil {
		return err
	}

	if _, err := srv.FindByID(ctx, userID); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return internalError(err, "Error in the reset of the password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return internalError(err, "Error in the reset of the password")
	}

	srv.log(ctx).Info("Password reset", slog.Int64("user_id", userID))

	return nil
}
