package middleware

import (
	"context"

	"github.com/Payphone-Digital/catalog/internal/constants"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestContextMiddleware seeds each request context with a request ID and
// client metadata for downstream logging. An inbound X-Request-ID is kept so
// IDs stay stable across hops.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, ctxutil.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, ctxutil.ClientIPKey, c.ClientIP())
		ctx = context.WithValue(ctx, ctxutil.UserAgentKey, c.Request.UserAgent())

		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
