package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/delivery/api/cookie"
	"padelpoint/internal/delivery/api/response"
	deliverycontext "padelpoint/internal/delivery/context"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/usecase"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler serves accounts, their addresses and password recovery.
type UserHandler struct {
	userUC usecase.UserUsecase
	cfg    *config.AuthConfig
	jar    *cookie.Jar
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		cfg:    params.Config.Auth,
		jar:    cookie.NewJar(params.Config.Auth.CookieSecure),
		logger: params.Logger,
	}
}

type CreateUserRequest struct {
	Name      string                 `json:"name" validate:"required,max=64"`
	Surname   string                 `json:"surname" validate:"required,max=64"`
	Username  string                 `json:"username" validate:"required,max=64"`
	Email     string                 `json:"email" validate:"required,email"`
	Password  string                 `json:"password" validate:"required"`
	Phone     string                 `json:"phone" validate:"omitempty,max=32"`
	IDTypeID  *int64                 `json:"idType" validate:"omitempty,gt=0"`
	IDNumber  string                 `json:"idNumber" validate:"omitempty,max=32"`
	Addresses []usecase.AddressInput `json:"address" validate:"omitempty,dive"`
}

// PatchUserRequest changes only the fields present in the body.
type PatchUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=64"`
	Surname  *string `json:"surname" validate:"omitempty,min=1,max=64"`
	Username *string `json:"username" validate:"omitempty,min=1,max=64"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	IDTypeID *int64  `json:"idType" validate:"omitempty,gt=0"`
	IDNumber *string `json:"idNumber" validate:"omitempty,max=32"`
}

// PutUserRequest replaces the whole profile.
type PutUserRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Surname  string `json:"surname" validate:"required,max=64"`
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=32"`
	IDTypeID int64  `json:"idType" validate:"required,gt=0"`
	IDNumber string `json:"idNumber" validate:"required,max=32"`
}

type ResetCodeRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
}

type ValidateResetCodeRequest struct {
	Code  string `json:"code" validate:"required,len=6,numeric"`
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Create(c.Request().Context(), usecase.CreateUserInput{
		Name:      req.Name,
		Surname:   req.Surname,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		IDTypeID:  req.IDTypeID,
		IDNumber:  req.IDNumber,
		Addresses: req.Addresses,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toUserDTO(user), "The user was created succesfully")
}

func (h *UserHandler) FindAll(c echo.Context) error {
	users, err := h.userUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, toUserDTOs(users), "The users was loaded succesfully")
}

// FindAuthenticated returns the user the access cookie belongs to.
func (h *UserHandler) FindAuthenticated(c echo.Context) error {
	user, err := h.userUC.FindAuthenticated(c.Request().Context(), deliverycontext.CurrentUser(c))
	if err != nil {
		return err
	}

	return response.OK(c, toUserDTO(user), "The user was found succesfully by cookie")
}

func (h *UserHandler) FindByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toUserDTO(user), "The user was found succesfully by id")
}

func (h *UserHandler) Patch(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PatchUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, id, usecase.UpdateUserInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		IDTypeID: req.IDTypeID,
		IDNumber: req.IDNumber,
	})
}

func (h *UserHandler) Put(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PutUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.update(c, id, usecase.UpdateUserInput{
		Name:     &req.Name,
		Surname:  &req.Surname,
		Username: &req.Username,
		Email:    &req.Email,
		Phone:    &req.Phone,
		IDTypeID: &req.IDTypeID,
		IDNumber: &req.IDNumber,
	})
}

func (h *UserHandler) update(c echo.Context, id int64, input usecase.UpdateUserInput) error {
	user, err := h.userUC.Update(c.Request().Context(), deliverycontext.CurrentUser(c), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, toUserDTO(user), "The recourse was updated succesfully")
}

func (h *UserHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.Remove(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, toUserDTO(user), "The recourse was unactivated succesfully")
}

func (h *UserHandler) Addresses(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	addresses, err := h.userUC.Addresses(c.Request().Context(), deliverycontext.CurrentUser(c), id)
	if err != nil {
		return err
	}

	return response.OK(c, toAddressDTOs(addresses), "The addresses was loaded succesfully")
}

func (h *UserHandler) RequestResetCode(c echo.Context) error {
	var req ResetCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), req.UsernameOrEmail); err != nil {
		return err
	}

	return response.Created(c, nil, "The tokens was created and the email was sended succesfully")
}

// ValidateResetCode exchanges a mailed code for the password-reset cookie.
func (h *UserHandler) ValidateResetCode(c echo.Context) error {
	var req ValidateResetCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.userUC.ValidateResetCode(c.Request().Context(), req.Code, req.Email)
	if err != nil {
		return err
	}
	h.jar.Set(c, cookie.PasswordReset, token, h.cfg.PasswordResetTTL)

	return response.Created(c, nil, "Code verified succesfully")
}

func (h *UserHandler) ResetPassword(c echo.Context) error {
	userID, ok := deliverycontext.ResetUserID(c)
	if !ok {
		return domainerrors.ErrResetTokenMissing
	}

	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), userID, req.NewPassword); err != nil {
		return err
	}
	h.jar.Clear(c, cookie.PasswordReset)

	return response.Success(c, http.StatusOK, nil, "The password was updated succesfully")
}
