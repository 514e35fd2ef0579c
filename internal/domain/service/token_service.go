package service

import (
	"errors"
	"time"

	"padelpoint/internal/domain/entity"
)

var (
	// ErrTokenExpired is returned when a token's signature is valid but its exp is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers malformed tokens, bad signatures and unexpected algorithms.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService signs and verifies the session and password-reset JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Sign issues a token carrying payload that expires after ttl.
	Sign(payload *entity.TokenPayload, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the raw claims.
	Verify(token string) (entity.TokenClaims, error)

	// Decode returns the claims without verifying the signature.
	Decode(token string) (entity.TokenClaims, error)

	SignPasswordReset(userID int64, ttl time.Duration) (string, error)

	// VerifyPasswordReset returns the user id of a valid password-reset token.
	VerifyPasswordReset(token string) (int64, error)
}
