package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: testSecret}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testPayload() *entity.TokenPayload {
	return &entity.TokenPayload{
		ID:     7,
		Method: entity.LoginMethodLocal,
		Roles:  []entity.RoleClaim{{ID: 1, Name: "admin"}, {ID: 2, Name: "user"}},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_SignAndVerify(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Sign(testPayload(), time.Hour)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	result := entity.ParseTokenPayload(claims)
	require.True(t, result.Valid(), result.Reason())
	assert.Equal(t, int64(7), result.Payload().ID)
	assert.Equal(t, entity.LoginMethodLocal, result.Payload().Method)
	assert.Equal(t, []string{"admin", "user"}, result.Payload().RoleNames())
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.Payload().ExpiresAt, 5*time.Second)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Sign(testPayload(), time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)

	// Decode still exposes the claims of an expired token.
	claims, err := svc.Decode(token)
	require.NoError(t, err)
	assert.NotNil(t, claims["roles"])
}

func TestJWTService_VerifyInvalid(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: "another-secret"}})
	require.NoError(t, err)
	foreign, err := other.Sign(testPayload(), time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(foreign)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_PasswordReset(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.SignPasswordReset(42, 5*time.Minute)
	require.NoError(t, err)

	userID, err := svc.VerifyPasswordReset(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	// A session token is not a reset token.
	session, err := svc.Sign(testPayload(), time.Hour)
	require.NoError(t, err)
	_, err = svc.VerifyPasswordReset(session)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}
