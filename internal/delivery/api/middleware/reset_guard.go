package middleware

import (
	"padelpoint/internal/delivery/api/cookie"
	deliverycontext "padelpoint/internal/delivery/context"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"

	"github.com/labstack/echo/v4"
)

// ResetPasswordGuard admits requests holding a valid password-reset cookie.
type ResetPasswordGuard struct {
	tokens service.TokenService
}

func NewResetPasswordGuard(tokens service.TokenService) *ResetPasswordGuard {
	return &ResetPasswordGuard{tokens: tokens}
}

func (g *ResetPasswordGuard) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.Value(c, cookie.PasswordReset)
		if token == "" {
			return domainerrors.ErrResetTokenMissing
		}

		userID, err := g.tokens.VerifyPasswordReset(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrResetTokenExpired
			}

			return domainerrors.ErrResetTokenInvalid
		}

		deliverycontext.SetResetUserID(c, userID)

		return next(c)
	}
}
