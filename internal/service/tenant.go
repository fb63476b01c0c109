package service

import (
	"context"
	"fmt"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
)

type TenantService struct{}

func NewTenantService() *TenantService {
	return &TenantService{}
}

// Upgrade confirms a plan upgrade for slug. The caller's tenant must match
// the slug; nothing else happens. The tier change is deliberately not
// persisted: this is an explicit no-op capability waiting on a billing
// integration to define the persistence contract.
func (s *TenantService) Upgrade(ctx context.Context, callerTenant, slug string) (dto.UpgradeTenantResponse, error) {
	if slug != callerTenant {
		return dto.UpgradeTenantResponse{}, ErrTenantMismatch
	}

	return dto.UpgradeTenantResponse{
		Message: fmt.Sprintf("Tenant %s has been upgraded to Pro Plan.", slug),
	}, nil
}
