package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenManager mints and verifies the bearer tokens shared between the auth
// and todo services. Claims carry exactly sub, iat and exp; both services must
// be configured with the same secret and algorithm name.
type TokenManager struct {
	Secret    []byte
	Method    jwt.SigningMethod
	ExpiresIn time.Duration
}

// NewTokenManager resolves the signing algorithm by name (e.g. "HS256").
// Only HMAC methods are accepted; the token contract is symmetric-key.
func NewTokenManager(secret, algorithm string, expireMinutes int) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q: HMAC required", algorithm)
	}
	return &TokenManager{
		Secret:    []byte(secret),
		Method:    method,
		ExpiresIn: time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Generate mints a token asserting the given subject, expiring after the
// configured window.
func (m *TokenManager) Generate(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ExpiresIn)),
	}
	return jwt.NewWithClaims(m.Method, claims).SignedString(m.Secret)
}

// Parse verifies signature and expiry and returns the token's subject.
// Expired tokens yield ErrTokenExpired; anything else that fails verification
// (malformed structure, signature mismatch, foreign algorithm) yields
// ErrTokenInvalid.
func (m *TokenManager) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
