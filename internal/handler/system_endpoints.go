package handler

import (
	"net/http"

	"blog-admin-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Welcome handles GET /, the whitelisted landing envelope.
func (h *Handler) Welcome(c *gin.Context) {
	respondSuccess(c, gin.H{
		"name":    "blog-admin-server",
		"message": "欢迎使用博客管理后台接口",
	}, "")
}

// ListAccessLogs handles GET /system/access-logs.
func (h *Handler) ListAccessLogs(c *gin.Context) {
	var query AccessLogListQuery
	if !bindQuery(c, &query) {
		return
	}

	filter := models.AccessLogFilter{
		IP:   query.IP,
		Path: query.Path,
		PageQuery: models.PageQuery{
			Page:     query.Page,
			PageSize: query.Size(),
		},
	}
	filter.Normalize()

	logs, total, err := h.accessLogs.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	respondSuccess(c, models.PageData{
		List:       logs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.PageSize,
		TotalPages: totalPages,
	}, "查询成功")
}

// GetAccessLog handles GET /system/access-logs/:id.
func (h *Handler) GetAccessLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entry, err := h.accessLogs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, entry, "")
}

// GetAccessLogStats handles GET /system/stats.
func (h *Handler) GetAccessLogStats(c *gin.Context) {
	stats, err := h.accessLogs.Stats(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, stats, "")
}

// CreateAccessLog handles POST /system/access-logs.
func (h *Handler) CreateAccessLog(c *gin.Context) {
	var req CreateAccessLogRequest
	if !bindJSON(c, &req) {
		return
	}

	entry := &models.AccessLog{
		IP:           req.IP,
		Method:       req.Method,
		Path:         req.Path,
		Params:       req.Params,
		UserAgent:    req.UserAgent,
		Referer:      req.Referer,
		StatusCode:   req.StatusCode,
		ResponseTime: req.ResponseTime,
		DeviceType:   req.DeviceType,
		OS:           req.OS,
		Browser:      req.Browser,
		UserID:       req.UserID,
	}
	if err := h.accessLogs.Record(c.Request.Context(), entry); err != nil {
		h.handleServiceError(c, err)
		return
	}

	accessLogsRecordedTotal.Inc()
	respondCreated(c, entry, "访问日志记录成功")
}

// GetGeoCacheStats handles GET /system/geo-cache/stats.
func (h *Handler) GetGeoCacheStats(c *gin.Context) {
	if h.resolver == nil {
		respondSuccess(c, gin.H{"size": 0, "keys": []string{}}, "")
		return
	}
	respondSuccess(c, h.resolver.Stats(), "")
}

// ClearGeoCache handles DELETE /system/geo-cache.
func (h *Handler) ClearGeoCache(c *gin.Context) {
	if h.resolver != nil {
		h.resolver.ClearCache()
	}
	respondSuccess(c, nil, "地理位置缓存已清空")
}

// GenerateToken handles POST /system/token/generate and the legacy
// POST /system/generate-token alias. Both are whitelisted.
func (h *Handler) GenerateToken(c *gin.Context) {
	var req GenerateTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.tokens.Issue(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: req.Sub},
		Username:         req.Username,
		Roles:            req.Roles,
	}, 0)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	tokensIssuedTotal.WithLabelValues("access").Inc()
	respondSuccess(c, result, "Token生成成功")
}

// RefreshToken handles POST /system/token/refresh.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req GenerateTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	refreshToken, err := h.tokens.IssueRefresh(models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: req.Sub},
		Username:         req.Username,
		Roles:            req.Roles,
	}, 0)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	tokensIssuedTotal.WithLabelValues("refresh").Inc()
	respondSuccess(c, gin.H{"refreshToken": refreshToken}, "Token生成成功")
}

// VerifyToken handles POST /system/token/verify.
func (h *Handler) VerifyToken(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	claims, err := h.tokens.Verify(req.Token)
	if err != nil {
		tokenVerificationsTotal.WithLabelValues("failure").Inc()
		respondError(c, http.StatusUnauthorized, "Token无效或已过期")
		return
	}

	tokenVerificationsTotal.WithLabelValues("success").Inc()
	respondSuccess(c, claims, "Token验证成功")
}

// DecodeToken handles POST /system/token/decode.
func (h *Handler) DecodeToken(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}

	claims, err := h.tokens.Decode(req.Token)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	respondSuccess(c, claims, "")
}
