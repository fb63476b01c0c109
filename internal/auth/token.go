package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
)

// ErrInvalidToken covers every verification failure: missing, malformed,
// expired, and badly signed tokens are indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the signed session payload carried by a bearer token.
type Claims struct {
	Email  string      `json:"email"`
	Tenant string      `json:"tenant"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager mints and verifies HS256 tokens with a shared secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Generate(email, tenant string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:  email,
		Tenant: tenant,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string. It fails closed with
// ErrInvalidToken on any parse, signature, or expiry failure.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
