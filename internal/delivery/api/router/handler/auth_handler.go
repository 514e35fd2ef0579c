package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"padelpoint/config"
	"padelpoint/internal/delivery/api/cookie"
	"padelpoint/internal/delivery/api/response"
	"padelpoint/internal/usecase"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler issues, inspects and clears the session cookies.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.AuthConfig
	jar    *cookie.Jar
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config.Auth,
		jar:    cookie.NewJar(params.Config.Auth.CookieSecure),
		logger: params.Logger,
	}
}

type LoginLocalRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// SessionStatusResponse is the body of GET /auth/status.
type SessionStatusResponse struct {
	IsLogged           bool             `json:"isLogged"`
	RefreshTokenExists bool             `json:"refreshTokenExists"`
	Message            string           `json:"message"`
	Payload            *TokenPayloadDTO `json:"payload,omitempty"`
}

func (h *AuthHandler) LoginLocal(c echo.Context) error {
	var req LoginLocalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := h.authUC.LoginLocal(c.Request().Context(), usecase.LoginLocalInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		return err
	}
	h.setSession(c, tokens)

	return response.Created(c, toUserDTO(tokens.User), "login succesfully")
}

func (h *AuthHandler) LoginGoogle(c echo.Context) error {
	var req LoginGoogleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tokens, err := h.authUC.LoginGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}
	h.setSession(c, tokens)

	return response.Created(c, toUserDTO(tokens.User), "login succesfully")
}

func (h *AuthHandler) Status(c echo.Context) error {
	status := h.authUC.SessionStatus(c.Request().Context(),
		cookie.Value(c, cookie.Access), cookie.Value(c, cookie.Refresh))

	return response.OK(c, &SessionStatusResponse{
		IsLogged:           status.IsLogged,
		RefreshTokenExists: status.RefreshTokenExists,
		Message:            status.Message,
		Payload:            toTokenPayloadDTO(status.Payload),
	}, status.Message)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	access, err := h.authUC.Refresh(c.Request().Context(), cookie.Value(c, cookie.Refresh))
	if err != nil {
		return err
	}
	h.jar.Set(c, cookie.Access, access, h.cfg.AccessTTL)

	return response.Created(c, access, "Token refreshed succesfully")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.jar.Clear(c, cookie.Access, cookie.Refresh)

	return response.OK(c, nil, "Logout successfully")
}

func (h *AuthHandler) setSession(c echo.Context, tokens *usecase.SessionTokens) {
	h.jar.Set(c, cookie.Access, tokens.AccessToken, h.cfg.AccessTTL)
	h.jar.Set(c, cookie.Refresh, tokens.RefreshToken, h.cfg.RefreshTTL)
}
