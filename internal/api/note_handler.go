package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuanngd/tenant-notes-api/internal/api/dto"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/service"
	"github.com/tuanngd/tenant-notes-api/internal/utils"
)

//go:generate mockery --name NoteService --output ../mocks
type NoteService interface {
	List(ctx context.Context, tenant string) ([]dto.NoteResponse, error)
	Create(ctx context.Context, tenant string, role domain.Role, req dto.CreateNoteRequest) (dto.NoteResponse, error)
}

type NoteHandler struct {
	*BaseHandler
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// ListNotes returns every note in the caller's tenant schema
// @Summary List notes
// @Description List all notes visible in the authenticated tenant's schema
// @Tags    notes
// @Produce json
// @Success 200 {array} dto.NoteResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router  /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	ctx := h.RequestCtx(c)
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
		return
	}

	notes, err := h.service.List(ctx, claims.Tenant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to retrieve notes"})
		return
	}

	c.JSON(http.StatusOK, notes)
}

// CreateNote inserts a note in the caller's tenant schema
// @Summary Create note
// @Description Create a note in the authenticated tenant's schema, subject to the member Free Plan ceiling
// @Tags    notes
// @Accept  json
// @Produce json
// @Param   body body dto.CreateNoteRequest true "Note object"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router  /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	ctx := h.RequestCtx(c)
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No authentication found"})
		return
	}

	note, err := h.service.Create(ctx, claims.Tenant, claims.Role, req)
	if err != nil {
		if errors.Is(err, service.ErrNoteQuotaExceeded) {
			c.JSON(http.StatusForbidden, dto.Error{Error: "Note limit reached for Free Plan."})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}
