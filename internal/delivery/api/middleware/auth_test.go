package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/delivery/api/cookie"
	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/infra/auth"
)

const guardSecret = "guard_test_secret_long_enough_for_hs256"

func newTestTokens(t *testing.T) service.TokenService {
	t.Helper()

	tokens, err := auth.NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: guardSecret}})
	require.NoError(t, err)

	return tokens
}

func sessionPair(t *testing.T, tokens service.TokenService, roles ...string) (string, string) {
	t.Helper()

	payload := &entity.TokenPayload{ID: 7, Method: entity.LoginMethodLocal}
	for i, name := range roles {
		payload.Roles = append(payload.Roles, entity.RoleClaim{ID: int64(i + 1), Name: name})
	}

	access, err := tokens.Sign(payload, time.Hour)
	require.NoError(t, err)
	refresh, err := tokens.Sign(payload, 2*time.Hour)
	require.NoError(t, err)

	return access, refresh
}

// signRaw signs arbitrary claims with the guard secret, bypassing payload construction.
func signRaw(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(guardSecret))
	require.NoError(t, err)

	return token
}

func TestAuthGuard_NoTokens(t *testing.T) {
	guard := NewAuthGuard(newTestTokens(t))

	requirements := []struct {
		required []string
		declared bool
	}{
		{nil, false},
		{[]string{}, true},
		{[]string{entity.RoleNameAdmin}, true},
		{[]string{entity.RoleNameUser}, true},
	}
	for _, req := range requirements {
		_, err := guard.Check("", "", req.required, req.declared)
		require.ErrorIs(t, err, domainerrors.ErrNoTokens)
		assert.Equal(t, "any token in header request", err.Error())
	}
}

func TestAuthGuard_AdminAlwaysAuthorized(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)
	access, refresh := sessionPair(t, tokens, entity.RoleNameAdmin)

	for _, required := range [][]string{{entity.RoleNameAdmin}, {entity.RoleNameUser}, {}, {"auditor"}} {
		auth, err := guard.Check(access, refresh, required, true)
		require.NoError(t, err, "required=%v", required)
		assert.Equal(t, int64(7), auth.Payload.ID)
		assert.Equal(t, access, auth.AccessToken)
		assert.Equal(t, refresh, auth.RefreshToken)
	}
}

func TestAuthGuard_UserDeniedOnAdminRoute(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)
	access, refresh := sessionPair(t, tokens, entity.RoleNameUser)

	_, err := guard.Check(access, refresh, []string{entity.RoleNameAdmin}, true)
	require.ErrorIs(t, err, domainerrors.ErrForbiddenResource)

	_, err = guard.Check(access, refresh, []string{entity.RoleNameAdmin, entity.RoleNameUser}, true)
	require.NoError(t, err)
}

func TestAuthGuard_NoRequirementAuthorizesAnyValidSession(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)

	for _, roles := range [][]string{{entity.RoleNameUser}, {"guest"}, {entity.RoleNameAdmin}} {
		access, refresh := sessionPair(t, tokens, roles...)

		_, err := guard.Check(access, refresh, nil, false)
		require.NoError(t, err, "roles=%v", roles)
	}
}

func TestAuthGuard_InvalidRefreshPayload(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)
	access, _ := sessionPair(t, tokens, entity.RoleNameUser)
	refresh := signRaw(t, jwt.MapClaims{"id": -1, "method": "", "roles": []any{}})

	_, err := guard.Check(access, refresh, []string{entity.RoleNameUser}, true)

	require.ErrorIs(t, err, domainerrors.ErrInvalidRefreshPayload)
	assert.Equal(t, "Invalid refresh token payload.", err.Error())
}

func TestAuthGuard_Rejections(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)
	access, refresh := sessionPair(t, tokens, entity.RoleNameUser)
	expired := signRaw(t, jwt.MapClaims{
		"id": 7, "method": "local", "roles": []any{map[string]any{"id": 2, "name": "user"}},
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 7}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		access  string
		refresh string
		want    error
	}{
		{name: "refresh expired", access: access, refresh: expired, want: domainerrors.ErrSessionExpired},
		{name: "refresh forged", access: access, refresh: forged, want: domainerrors.ErrSessionExpired},
		{name: "refresh missing", access: access, refresh: "", want: domainerrors.ErrSessionExpired},
		{name: "access expired", access: expired, refresh: refresh, want: domainerrors.ErrAccessTokenExpired},
		{name: "access missing", access: "", refresh: refresh, want: domainerrors.ErrAccessTokenExpired},
		{
			name:    "access payload invalid",
			access:  signRaw(t, jwt.MapClaims{"id": 7, "method": "ldap", "roles": []any{map[string]any{"id": 2, "name": "user"}}}),
			refresh: refresh,
			want:    domainerrors.ErrInvalidAccessPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Check(tt.access, tt.refresh, []string{entity.RoleNameUser}, true)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthGuard_MiddlewareRendersEnvelope(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewAuthGuard(tokens)
	errorMiddleware := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, guard.Require(entity.RoleNameAdmin))
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int64{"id": deliverycontext.CurrentUser(c).ID})
	}, guard.Authenticated())

	access, refresh := sessionPair(t, tokens, entity.RoleNameUser)
	withSession := func(req *http.Request) *http.Request {
		req.AddCookie(&http.Cookie{Name: cookie.Access, Value: access})
		req.AddCookie(&http.Cookie{Name: cookie.Refresh, Value: refresh})

		return req
	}

	t.Run("forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin", nil)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["status"])
		assert.Equal(t, "Forbidden resource", body["message"])
	})

	t.Run("no cookies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "any token in header request")
	})

	t.Run("authorized exposes caller", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/me", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7}`, rec.Body.String())
	})
}

func TestResetPasswordGuard(t *testing.T) {
	tokens := newTestTokens(t)
	guard := NewResetPasswordGuard(tokens)
	e := echo.New()

	run := func(value string) (int64, error) {
		req := httptest.NewRequest(http.MethodPut, "/user/reset-pass", nil)
		if value != "" {
			req.AddCookie(&http.Cookie{Name: cookie.PasswordReset, Value: value})
		}
		c := e.NewContext(req, httptest.NewRecorder())

		var seen int64
		err := guard.Handle(func(c echo.Context) error {
			seen, _ = deliverycontext.ResetUserID(c)

			return nil
		})(c)

		return seen, err
	}

	_, err := run("")
	require.ErrorIs(t, err, domainerrors.ErrResetTokenMissing)

	_, err = run("not-a-jwt")
	require.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)

	expired := signRaw(t, jwt.MapClaims{"userId": 7, "isValidOperation": true, "exp": time.Now().Add(-time.Second).Unix()})
	_, err = run(expired)
	require.ErrorIs(t, err, domainerrors.ErrResetTokenExpired)

	valid, err := tokens.SignPasswordReset(7, 5*time.Minute)
	require.NoError(t, err)
	userID, err := run(valid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}
