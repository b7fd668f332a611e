// Package auth issues and validates bearer tokens for the recruitment API.
package auth

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"recruitd/internal/errs"
)

// TokenService issues signed bearer tokens and validates them statelessly.
// A token carries only the subject and timestamps, never authorization claims.
type TokenService interface {
	// Issue creates a signed token for the subject with a fixed TTL.
	Issue(subject string) (token string, expiresAt time.Time, err error)
	// Validate verifies the signature and expiry and returns the subject.
	// Fails with errs.ErrTokenMalformed, errs.ErrSignatureInvalid or
	// errs.ErrTokenExpired.
	Validate(token string) (subject string, err error)
}

// HS256TokenService signs tokens with a process-wide HS256 secret, set once at
// construction and read-only thereafter.
type HS256TokenService struct {
	signKey []byte
	ttl     time.Duration
}

// NewHS256TokenService constructs a token service with the given signing key
// and token lifetime.
func NewHS256TokenService(signKey []byte, ttl time.Duration) *HS256TokenService {
	return &HS256TokenService{signKey: signKey, ttl: ttl}
}

// Issue creates a signed HS256 JWT for the given subject.
func (s *HS256TokenService) Issue(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	jti, err := uuid.NewV4()
	if err != nil {
		return "", time.Time{}, err
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
		ID:        jti.String(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// Validate verifies HS256 signature and expiry, returning the embedded subject.
// Any tampering with the payload fails the signature check; no partial trust is
// given to a badly signed token.
func (s *HS256TokenService) Validate(token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errs.ErrSignatureInvalid
		}
		return s.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", errs.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", errs.ErrTokenExpired
		default:
			return "", errs.ErrSignatureInvalid
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrSignatureInvalid
	}
	return claims.Subject, nil
}
