package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/service"
	"github.com/tuanngd/tenant-notes-api/internal/utils"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Upgrade(ctx context.Context, callerTenant, slug string) (dto.UpgradeTenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// UpgradeTenant confirms a plan upgrade for the caller's own tenant
// @Summary Upgrade tenant plan
// @Description Request a Pro Plan upgrade; only an admin of the tenant named by slug may upgrade it
// @Tags    tenants
// @Produce json
// @Param   slug path string true "Tenant slug"
// @Success 200 {object} dto.UpgradeTenantResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Security BearerAuth
// @Router  /tenants/{slug}/upgrade [post]
func (h *TenantHandler) UpgradeTenant(c *gin.Context) {
	ctx := h.RequestCtx(c)
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
		return
	}

	resp, err := h.service.Upgrade(ctx, claims.Tenant, c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTenantMismatch) {
			c.JSON(http.StatusForbidden, dto.Error{Error: "Forbidden"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to upgrade tenant"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
