package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngd/tenant-notes-api/internal/auth"
	"github.com/tuanngd/tenant-notes-api/internal/config"
	"github.com/tuanngd/tenant-notes-api/internal/domain"
	"github.com/tuanngd/tenant-notes-api/internal/middleware"
	"github.com/tuanngd/tenant-notes-api/internal/service"
	"github.com/tuanngd/tenant-notes-api/pkg/logger"
)

// newTestRouter wires the full middleware chain with a real token manager and
// tenant service. The Redis address is unreachable so the rate limiter fails
// open and requests pass straight through.
func newTestRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	appLogger := logger.NewLogger("test")
	cfg := &config.Config{DefaultRateLimit: 1000, GlobalRateLimit: 10000}
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		ReadTimeout: 10 * time.Millisecond,
	})

	server := NewServer(
		new(MockAuthService),
		new(MockNoteService),
		service.NewTenantService(),
		middleware.NewAuthMiddleware(tokens),
		middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger),
		middleware.NewValidationMiddleware(appLogger),
	)

	router := gin.New()
	server.SetupRoutes(router)
	return router
}

func postUpgradeRoute(router *gin.Engine, slug, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/tenants/"+slug+"/upgrade", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func TestUpgradeRoute_BodilessPostSucceeds(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate("admin@acme.test", "acme", domain.RoleAdmin)
	require.NoError(t, err)

	w := postUpgradeRoute(newTestRouter(tokens), "acme", token)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.Contains(t, w.Body.String(), "Tenant acme has been upgraded to Pro Plan.")
}

func TestUpgradeRoute_SlugMismatch(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate("admin@acme.test", "acme", domain.RoleAdmin)
	require.NoError(t, err)

	w := postUpgradeRoute(newTestRouter(tokens), "globex", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpgradeRoute_MemberForbidden(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate("user@acme.test", "acme", domain.RoleMember)
	require.NoError(t, err)

	w := postUpgradeRoute(newTestRouter(tokens), "acme", token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
