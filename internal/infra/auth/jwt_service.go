// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	"padelpoint/internal/domain/service"
	"padelpoint/internal/errors"
)

const (
	claimUserID           = "userId"
	claimIsValidOperation = "isValidOperation"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Access, refresh and password-reset tokens share one secret.
type jwtService struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		now:    time.Now,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

func (s *jwtService) Sign(payload *entity.TokenPayload, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims(payload.Claims())

	return s.sign(claims, ttl)
}

func (s *jwtService) Verify(token string) (entity.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, err := s.parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	return entity.TokenClaims(claims), nil
}

func (s *jwtService) Decode(token string) (entity.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	return entity.TokenClaims(claims), nil
}

func (s *jwtService) SignPasswordReset(userID int64, ttl time.Duration) (string, error) {
	return s.sign(jwt.MapClaims{
		claimUserID:           userID,
		claimIsValidOperation: true,
	}, ttl)
}

func (s *jwtService) VerifyPasswordReset(token string) (int64, error) {
	claims, err := s.Verify(token)
	if err != nil {
		return 0, err
	}

	if valid, _ := claims[claimIsValidOperation].(bool); !valid {
		return 0, errors.Wrap(service.ErrTokenInvalid, "not a password reset token")
	}

	userID, ok := claims[claimUserID].(float64)
	if !ok || userID < 0 {
		return 0, errors.Wrap(service.ErrTokenInvalid, "missing user id")
	}

	return int64(userID), nil
}

func (s *jwtService) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
