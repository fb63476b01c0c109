package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// CredentialStore resolves login credentials by email. The seeded
// implementation is a fixed in-memory list; an external identity provider
// can sit behind the same interface.
type CredentialStore interface {
	Lookup(email string) (*domain.Credential, bool)
}

type StaticCredentialStore struct {
	byEmail map[string]domain.Credential
}

func NewStaticCredentialStore(creds []domain.Credential) *StaticCredentialStore {
	byEmail := make(map[string]domain.Credential, len(creds))
	for _, cred := range creds {
		byEmail[cred.Email] = cred
	}
	return &StaticCredentialStore{byEmail: byEmail}
}

func (s *StaticCredentialStore) Lookup(email string) (*domain.Credential, bool) {
	cred, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	return &cred, true
}

// SeededCredentials returns the demo users the service ships with.
func SeededCredentials() []domain.Credential {
	return []domain.Credential{
		{Email: "admin@acme.test", Password: "password", Tenant: "acme", Role: domain.RoleAdmin},
		{Email: "user@acme.test", Password: "password", Tenant: "acme", Role: domain.RoleMember},
		{Email: "admin@globex.test", Password: "password", Tenant: "globex", Role: domain.RoleAdmin},
		{Email: "user@globex.test", Password: "password", Tenant: "globex", Role: domain.RoleMember},
	}
}

// VerifyPassword compares a supplied password against a credential record.
// Records with a bcrypt hash use bcrypt; plaintext seed records use a
// constant-time equality check.
func VerifyPassword(cred *domain.Credential, supplied string) bool {
	if cred.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(cred.Password), []byte(supplied)) == 1
}
