package middleware

import (
	"net/http"
	"runtime/debug"

	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into a 500 error envelope. The stack trace is
// attached to the envelope only outside production.
func Recovery(logger *zap.Logger, production bool) gin.HandlerFunc {
	log := logger.Named("Recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				log.Error("Panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", stack))

				var detail *models.ErrorDetail
				if !production {
					detail = &models.ErrorDetail{Stack: string(stack)}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					models.ErrorEnvelope("服务器内部错误", models.CodeInternalError, detail, GetRequestID(c)))
			}
		}()
		c.Next()
	}
}
