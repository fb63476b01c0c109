package utils

import (
	"context"
	"errors"

	"github.com/tuanngd/tenant-notes-api/internal/auth"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrInvalidClaimsType = errors.New("invalid claims type")
)

func GetClaimsFromContext(c context.Context) (*auth.Claims, error) {
	value := c.Value(ClaimsKey)
	if value == nil {
		return nil, ErrNoClaimsInContext
	}

	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil, ErrInvalidClaimsType
	}

	return claims, nil
}

func GetTenantFromContext(c context.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Tenant, nil
}
