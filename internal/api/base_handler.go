package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tuanngd/tenant-notes-api/internal/utils"
)

type BaseHandler struct{}

// RequestCtx copies gin context keys into the request context under typed
// keys so services and the shared claim helpers never touch gin.
func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
