package context

import (
	"github.com/labstack/echo/v4"

	"padelpoint/internal/domain/entity"
)

// KeyAuth is the echo.Context key of the authenticated session.
const KeyAuth ContextKey = "auth"

// AuthContext is what the auth guard learned about the caller.
type AuthContext struct {
	AccessToken  string
	RefreshToken string
	Payload      *entity.TokenPayload
}

func SetAuth(c echo.Context, auth *AuthContext) {
	c.Set(string(KeyAuth), auth)
}

// GetAuth returns the session stored by the guard, or nil on unguarded routes.
func GetAuth(c echo.Context) *AuthContext {
	auth, _ := c.Get(string(KeyAuth)).(*AuthContext)

	return auth
}

// CurrentUser returns the access token payload of the caller, or nil.
func CurrentUser(c echo.Context) *entity.TokenPayload {
	if auth := GetAuth(c); auth != nil {
		return auth.Payload
	}

	return nil
}

// AccessToken returns the raw access token of the caller, or "".
func AccessToken(c echo.Context) string {
	if auth := GetAuth(c); auth != nil {
		return auth.AccessToken
	}

	return ""
}

// KeyResetUser is the echo.Context key of the user a password-reset token was issued for.
const KeyResetUser ContextKey = "reset_user"

func SetResetUserID(c echo.Context, userID int64) {
	c.Set(string(KeyResetUser), userID)
}

// ResetUserID returns the user id stored by the reset guard.
func ResetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyResetUser)).(int64)

	return id, ok
}
