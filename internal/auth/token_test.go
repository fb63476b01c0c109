package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Generate("admin@acme.test", "acme", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@acme.test", claims.Email)
	assert.Equal(t, "acme", claims.Tenant)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	token, err := tokens.Generate("user@acme.test", "acme", domain.RoleMember)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager("one-secret", time.Hour).Generate("user@acme.test", "acme", domain.RoleMember)
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
