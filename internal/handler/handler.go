package handler

import (
	"net/http"

	"blog-admin-server/internal/geoip"
	"blog-admin-server/internal/middleware"
	"blog-admin-server/internal/models"
	"blog-admin-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the admin HTTP API.
type Handler struct {
	dictionaries service.DictionaryService
	items        service.DictionaryItemService
	auth         service.AuthService
	accessLogs   service.AccessLogService
	tokens       service.TokenService
	resolver     *geoip.Resolver
	logger       *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	dictionaries service.DictionaryService,
	items service.DictionaryItemService,
	auth service.AuthService,
	accessLogs service.AccessLogService,
	tokens service.TokenService,
	resolver *geoip.Resolver,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		dictionaries: dictionaries,
		items:        items,
		auth:         auth,
		accessLogs:   accessLogs,
		tokens:       tokens,
		resolver:     resolver,
		logger:       logger.Named("Handler"),
	}
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

func respondSuccess(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusOK, models.Success(data, msg, requestID(c)))
}

func respondCreated(c *gin.Context, data any, msg string) {
	c.JSON(http.StatusCreated, models.Created(data, msg, requestID(c)))
}

func respondPage(c *gin.Context, list any, total int64, msg string) {
	c.JSON(http.StatusOK, models.Pagination(list, total, msg, requestID(c)))
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, models.ErrorEnvelope(msg, envelopeCode(status), nil, requestID(c)))
}

// envelopeCode keeps conflict responses on the legacy 400 application code
// while the wire status stays 409.
func envelopeCode(status int) models.ResponseCode {
	if status == http.StatusConflict {
		return models.CodeBadRequest
	}
	return models.CodeFromStatus(status)
}
