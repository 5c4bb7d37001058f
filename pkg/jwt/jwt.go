package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service signs and verifies HS256 tokens. The signing key is kept in memory
// only and should be cryptographically secure (at least 32 bytes).
type Service struct {
	signingKey []byte
}

// New creates a new JWT service with the provided signing key.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a new JWT service from a string signing key.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate creates a signed token binding subject for the given lifetime.
// Each token carries a unique jti so two tokens minted in the same second for
// the same subject are still distinct values.
func (s *Service) Generate(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrMissingClaims
	}

	now := time.Now()
	claims := jwtlib.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	return signed, nil
}

// Subject verifies a token's signature and temporal claims and returns its
// subject. Tokens signed with any algorithm other than HS256 are rejected to
// prevent algorithm confusion attacks.
func (s *Service) Subject(tokenString string) (string, error) {
	token, err := jwtlib.ParseWithClaims(
		tokenString,
		&jwtlib.RegisteredClaims{},
		func(t *jwtlib.Token) (any, error) {
			if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
				return nil, ErrUnexpectedSigningMethod
			}
			return s.signingKey, nil
		},
	)
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return "", ErrExpiredToken
	case err != nil:
		return "", errors.Join(ErrInvalidToken, err)
	case !token.Valid:
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtlib.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidClaims
	}
	return claims.Subject, nil
}
