package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"padelpoint/internal/errors"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: "test_client_id",
		validate: validate,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestAuthService(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "ana@example.com",
				"given_name":     "Ana",
				"family_name":    "Paz",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-1", user.Subject)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.GivenName)
	assert.Equal(t, "Paz", user.FamilyName)
}

func TestAuthService_VerifyIDToken_Rejected(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Claims: map[string]any{"email": "ana@example.com", "email_verified": false}}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestAuthService_VerifyIDToken_NoClientID(t *testing.T) {
	svc := newTestAuthService(nil)
	svc.clientID = ""

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}
