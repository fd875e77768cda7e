package middleware

import (
	"net/http"
	"time"

	"github.com/Payphone-Digital/catalog/internal/constants"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"github.com/Payphone-Digital/catalog/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter enforces a fixed-window per-client-IP request limit backed by
// Redis, so the limit holds across instances.
type RateLimiter struct {
	client     *redis.Client
	maxRequest int64
	window     time.Duration
}

func NewRateLimiter(client *redis.Client, maxRequest int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client:     client,
		maxRequest: int64(maxRequest),
		window:     window,
	}
}

// Limit rejects requests once a client exceeds the window budget. When the
// limiter has no Redis backing, or Redis fails, requests pass through: rate
// limiting degrades open rather than taking the API down with it.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		key := constants.RateLimitKeyPrefix + c.ClientIP()

		count, err := rl.client.IncrWindow(c.Request.Context(), key, rl.window)
		if err != nil {
			logger.GetLogger().Warn("Rate limiter unavailable",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if count > rl.maxRequest {
			logger.GetLogger().Warn("Rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.Int64("count", count),
				zap.Int64("limit", rl.maxRequest),
			)
			c.JSON(http.StatusTooManyRequests, constants.BuildErrorResponse(constants.MsgTooManyRequests, ""))
			c.Abort()
			return
		}

		c.Next()
	}
}
