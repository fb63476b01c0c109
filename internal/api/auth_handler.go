package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/service"
)

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates a user and issues a bearer token
// @Summary Log in
// @Description Validate credentials and issue a bearer token scoped to the user's tenant and role
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
