package google

import (
	"context"
	"log/slog"

	"google.golang.org/api/idtoken"

	"padelpoint/config"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

// validateFunc matches idtoken.Validate so tests can stub Google's certificate lookup.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl verifies Google Sign-In ID tokens against the configured client id.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user := &service.OAuthUser{
		Subject:       payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
	}

	if user.Email == "" {
		return nil, errors.New("token verification failed: email claim missing")
	}
	if !user.EmailVerified {
		return nil, errors.New("token verification failed: email not verified")
	}

	s.logger.Debug("Google ID token verified",
		slog.String("subject", user.Subject),
		slog.String("email", user.Email))

	return user, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
