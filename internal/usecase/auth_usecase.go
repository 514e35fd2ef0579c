// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"padelpoint/internal/domain/entity"
)

// --- Input DTOs ---

// LoginLocalInput defines the credentials for a password login.
type LoginLocalInput struct {
	UsernameOrEmail string
	Password        string
}

// --- Output DTOs ---

// SessionTokens are the access and refresh tokens issued at login.
type SessionTokens struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// SessionStatus describes the state of the caller's session cookies.
type SessionStatus struct {
	IsLogged           bool                 `json:"isLogged"`
	RefreshTokenExists bool                 `json:"refreshTokenExists"`
	Message            string               `json:"message"`
	Payload            *entity.TokenPayload `json:"payload,omitempty"`
}

// AuthUsecase issues and refreshes session tokens.
type AuthUsecase interface {
	LoginLocal(ctx context.Context, input LoginLocalInput) (*SessionTokens, error)

	// LoginGoogle verifies a Google ID token and signs in, creating the user on first login.
	LoginGoogle(ctx context.Context, idToken string) (*SessionTokens, error)

	// SessionStatus never fails; every outcome is described by the returned status.
	SessionStatus(ctx context.Context, accessToken, refreshToken string) *SessionStatus

	// Refresh issues a new access token from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
