package service

import (
	"context"
)

// OAuthUser represents the identity asserted by a Google ID token
type OAuthUser struct {
	Subject       string // Google's 'sub' claim
	Email         string
	GivenName     string
	FamilyName    string
	EmailVerified bool
}

// OAuthAuthService verifies ID tokens sent directly by the client after Google Sign-In.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
