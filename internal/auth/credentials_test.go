package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

func TestStaticCredentialStoreLookup(t *testing.T) {
	store := NewStaticCredentialStore(SeededCredentials())

	cred, ok := store.Lookup("admin@acme.test")
	require.True(t, ok)
	assert.Equal(t, "acme", cred.Tenant)
	assert.Equal(t, domain.RoleAdmin, cred.Role)

	_, ok = store.Lookup("nobody@acme.test")
	assert.False(t, ok)
}

func TestVerifyPasswordPlaintext(t *testing.T) {
	cred := &domain.Credential{Email: "user@acme.test", Password: "password"}

	assert.True(t, VerifyPassword(cred, "password"))
	assert.False(t, VerifyPassword(cred, "wrong"))
	assert.False(t, VerifyPassword(cred, ""))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cred := &domain.Credential{Email: "user@acme.test", PasswordHash: string(hash)}

	assert.True(t, VerifyPassword(cred, "s3cret"))
	assert.False(t, VerifyPassword(cred, "password"))
}

func TestVerifyPasswordHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed"), bcrypt.MinCost)
	require.NoError(t, err)

	// A record carrying both fields must never fall back to the plaintext path.
	cred := &domain.Credential{Password: "plain", PasswordHash: string(hash)}

	assert.True(t, VerifyPassword(cred, "hashed"))
	assert.False(t, VerifyPassword(cred, "plain"))
}
