package middleware

import (
	"log/slog"

	"padelpoint/internal/delivery/api/cookie"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/policy"
	"padelpoint/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthGuard admits requests carrying a live session in the access and refresh cookies.
type AuthGuard struct {
	tokens service.TokenService
}

func NewAuthGuard(tokens service.TokenService) *AuthGuard {
	return &AuthGuard{tokens: tokens}
}

// Authenticated admits any live session.
func (g *AuthGuard) Authenticated() echo.MiddlewareFunc {
	return g.middleware(nil, false)
}

// Require admits live sessions whose roles meet roles. Admins always pass.
func (g *AuthGuard) Require(roles ...string) echo.MiddlewareFunc {
	return g.middleware(roles, true)
}

func (g *AuthGuard) middleware(required []string, declared bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth, err := g.Check(cookie.Value(c, cookie.Access), cookie.Value(c, cookie.Refresh), required, declared)
			if err != nil {
				return err
			}

			deliverycontext.SetAuth(c, auth)

			ctx := c.Request().Context()
			if logger := deliverycontext.GetLogger(ctx); logger != nil {
				ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", auth.Payload.ID)))
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}

// Check decides one request. The refresh token is judged before the access token:
// a dead session fails even when the access token still looks valid.
func (g *AuthGuard) Check(accessToken, refreshToken string, required []string, declared bool) (*deliverycontext.AuthContext, error) {
	if accessToken == "" && refreshToken == "" {
		return nil, domainerrors.ErrNoTokens
	}

	refreshClaims, err := g.tokens.Verify(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrSessionExpired
	}
	if !entity.ParseTokenPayload(refreshClaims).Valid() {
		return nil, domainerrors.ErrInvalidRefreshPayload
	}

	accessClaims, err := g.tokens.Verify(accessToken)
	if err != nil {
		return nil, domainerrors.ErrAccessTokenExpired
	}
	access := entity.ParseTokenPayload(accessClaims)
	if !access.Valid() {
		if refreshRoles, _ := entity.ClaimRoles(refreshClaims); len(refreshRoles) == 0 {
			return nil, domainerrors.ErrNoRolesInToken
		}

		return nil, domainerrors.ErrInvalidAccessPayload
	}

	auth := &deliverycontext.AuthContext{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Payload:      access.Payload(),
	}
	if !declared {
		return auth, nil
	}

	callerRoles, err := g.decodeRoles(accessToken)
	if err != nil {
		return nil, err
	}
	if policy.Decide(callerRoles, required) == policy.Deny {
		return nil, domainerrors.ErrForbiddenResource
	}

	return auth, nil
}

// decodeRoles reads the role names from the already verified access token without re-verifying it.
func (g *AuthGuard) decodeRoles(accessToken string) ([]string, error) {
	claims, err := g.tokens.Decode(accessToken)
	if err != nil {
		return nil, domainerrors.ErrForbiddenResource
	}

	rawRoles, isArray := claims["roles"].([]any)
	if !isArray {
		return nil, domainerrors.ErrForbiddenResource
	}
	if len(rawRoles) == 0 {
		return nil, domainerrors.ErrNoRolesInToken
	}

	roles, ok := entity.ClaimRoles(claims)
	if !ok {
		return nil, domainerrors.ErrForbiddenResource
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}

	return names, nil
}
