package handler

import (
	"errors"
	"net/http"

	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError is the single conversion point from domain errors to
// wire envelopes. Unknown errors are logged and redacted to a generic 500.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, models.ErrDictionaryTypeTaken):
		status, msg = http.StatusConflict, "该字典类型已存在"
	case errors.Is(err, models.ErrDictionaryNameTaken):
		status, msg = http.StatusConflict, "该字典名称已存在"
	case errors.Is(err, models.ErrItemNameTaken):
		status, msg = http.StatusConflict, "该字典下名称已存在"
	case errors.Is(err, models.ErrItemValueTaken):
		status, msg = http.StatusConflict, "该字典下枚举值已存在"
	case errors.Is(err, models.ErrUsernameTaken):
		status, msg = http.StatusConflict, "用户名已存在"
	case errors.Is(err, models.ErrEmailTaken):
		status, msg = http.StatusConflict, "邮箱已被注册"
	case errors.Is(err, models.ErrDictionaryNotFound):
		status, msg = http.StatusNotFound, "字典不存在"
	case errors.Is(err, models.ErrDictionaryItemNotFound):
		status, msg = http.StatusNotFound, "字典项不存在"
	case errors.Is(err, models.ErrUserNotFound):
		status, msg = http.StatusNotFound, "用户不存在"
	case errors.Is(err, models.ErrAccessLogNotFound):
		status, msg = http.StatusNotFound, "访问日志不存在"
	case errors.Is(err, models.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "用户名或密码错误"
	case errors.Is(err, models.ErrUserDisabled):
		status, msg = http.StatusUnauthorized, "账户已被禁用"
	case errors.Is(err, models.ErrTokenExpired), errors.Is(err, models.ErrTokenInvalid):
		status, msg = http.StatusUnauthorized, "Token无效或已过期"
	case errors.Is(err, models.ErrTokenMalformed):
		status, msg = http.StatusBadRequest, "Token格式错误"
	case errors.Is(err, models.ErrEmptyBatch):
		status, msg = http.StatusBadRequest, "请选择要删除的记录"
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "资源不存在"
	case errors.Is(err, models.ErrInvalidInput):
		status, msg = http.StatusBadRequest, "请求参数错误"
	case errors.Is(err, models.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "未授权访问"
	case errors.Is(err, models.ErrForbidden):
		status, msg = http.StatusForbidden, "禁止访问"
	case errors.Is(err, models.ErrInternalServer):
		status, msg = http.StatusInternalServerError, "操作失败，请稍后重试"
	default:
		h.logger.Error("Unhandled service error",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
		status, msg = http.StatusInternalServerError, "操作失败，请稍后重试"
	}

	if status != http.StatusInternalServerError {
		h.logger.Warn("Request rejected",
			zap.Int("status", status),
			zap.String("msg", msg),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
	}
	respondError(c, status, msg)
}
