package middleware

import (
	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is the gin context key holding the request id.
const ContextKeyRequestID = "request_id"

// RequestID propagates the inbound X-Request-ID or generates a fresh one,
// storing it on the context and echoing it in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = models.NewRequestID()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID reads the request id stored by RequestID, empty when absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
