package service

import (
	"context"
	"fmt"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/auth"
)

type AuthService struct {
	creds  auth.CredentialStore
	tokens *auth.TokenManager
}

func NewAuthService(creds auth.CredentialStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		creds:  creds,
		tokens: tokens,
	}
}

// Login validates the credentials and mints a signed claim set for the user's
// tenant and role. Every failure maps to ErrInvalidCredentials so callers
// cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	cred, ok := s.creds.Lookup(req.Email)
	if !ok || !auth.VerifyPassword(cred, req.Password) {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(cred.Email, cred.Tenant, cred.Role)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return dto.LoginResponse{
		Token:  token,
		Tenant: cred.Tenant,
		Role:   string(cred.Role),
	}, nil
}
