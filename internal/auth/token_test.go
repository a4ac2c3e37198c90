package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestTokenManager_Expiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{name: "Fresh token", elapsed: 0},
		{name: "Valid at 59 minutes", elapsed: 59 * time.Minute},
		{name: "Expired at one hour and one second", elapsed: time.Hour + time.Second, wantErr: true},
		{name: "Expired a day later", elapsed: 24 * time.Hour, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: issued}
			m := NewTokenManager("secret", time.Hour, WithClock(clock.now))

			token, err := m.Issue("a@b.com")
			require.NoError(t, err)

			clock.t = issued.Add(tt.elapsed)
			claims, err := m.Verify(token)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a@b.com", claims.Email)
			assert.WithinDuration(t, issued.Add(time.Hour), claims.ExpiresAt.Time, 0)
		})
	}
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	foreign, err := other.Issue("a@b.com")
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@b.com"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Email:            "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not.a.token"},
		{name: "Empty", token: ""},
		{name: "Signed with another secret", token: foreign},
		{name: "Missing expiry", token: noExpiry},
		{name: "Unexpected algorithm", token: wrongAlg},
		{name: "Missing email", token: noEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Verify(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestTokenManager_Issue_RequiresEmail(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.Issue("   ")

	assert.ErrorIs(t, err, ErrMissingEmail)
}
