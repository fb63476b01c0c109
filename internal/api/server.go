package api

import (
	"github.com/gin-gonic/gin"

	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/middleware"
)

type Server struct {
	auth       *AuthHandler
	note       *NoteHandler
	tenant     *TenantHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	authService AuthService,
	noteService NoteService,
	tenantService TenantService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		auth:       NewAuthHandler(authService),
		note:       NewNoteHandler(noteService),
		tenant:     NewTenantHandler(tenantService),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(router *gin.Engine) {
	api := router.Group("")
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit())

	api.POST("/login", s.auth.Login)

	{
		notes := api.Group("/notes", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			notes.GET("", s.note.ListNotes)
			notes.POST("", s.authMW.RequireRole(domain.RoleMember, domain.RoleAdmin), s.note.CreateNote)
		}

		tenants := api.Group("/tenants", s.authMW.JWTAuth(), s.rateLimit.TenantRateLimit(), s.authMW.RequireRole(domain.RoleAdmin))
		{
			tenants.POST("/:slug/upgrade", s.tenant.UpgradeTenant)
		}
	}
}
