// Package auth issues and verifies access tokens and tracks how far a request
// has progressed through the authentication gates.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for any credential that fails verification.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrMissingEmail is returned when asked to issue a token without an email.
	ErrMissingEmail = errors.New("email is required")
)

// Claims carried by an access token. Only the email identifies the caller.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Option configures a TokenManager.
type Option func(*TokenManager)

// WithClock replaces the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) {
		m.now = now
	}
}

// TokenManager signs and verifies HS256 access tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager issuing tokens valid for ttl.
func NewTokenManager(secret string, ttl time.Duration, opts ...Option) *TokenManager {
	m := &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue signs a token for email.
func (m *TokenManager) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrMissingEmail
	}

	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of raw and returns its claims. The returned
// error wraps ErrInvalidToken and the underlying jwt cause.
func (m *TokenManager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrInvalidToken)
	}

	return claims, nil
}
