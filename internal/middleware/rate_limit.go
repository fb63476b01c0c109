package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tuanngd/tenant-notes-api/internal/config"
	"github.com/tuanngd/tenant-notes-api/internal/utils"
	"github.com/tuanngd/tenant-notes-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting, keyed by the tenant in
// the verified claims
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := utils.GetTenantFromContext(requestContext(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tenant required for rate limiting"})
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:tenant:%s", tenant)
		m.checkLimit(c, key, m.config.DefaultRateLimit)
	}
}

// GlobalRateLimit implements global rate limiting based on client IP
func (m *RateLimitMiddleware) GlobalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.checkLimit(c, key, m.config.GlobalRateLimit)
	}
}

// checkLimit applies a fixed one-minute window against a Redis counter.
// Redis failures fail open: a broken limiter must not take the API down.
func (m *RateLimitMiddleware) checkLimit(c *gin.Context, key string, limit int) {
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := time.Now().Add(time.Minute).Unix()

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": reset,
		})
		c.Abort()
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

	c.Next()
}

// requestContext copies gin keys into the request context so the shared
// context helpers work inside middleware as well as handlers
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	for k, v := range c.Keys {
		ctx = context.WithValue(ctx, utils.ContextKey(k), v)
	}
	return ctx
}
