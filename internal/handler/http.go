package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every API endpoint onto the engine. The token guard
// is installed by the caller so route registration stays declarative.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Welcome)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	dictionary := r.Group("/dictionary")
	{
		dictionary.POST("/create", h.CreateDictionary)
		dictionary.GET("/list", h.ListDictionaries)
		dictionary.GET("/type/:type", h.ListDictionariesByType)
		dictionary.GET("/:id", h.GetDictionary)
		dictionary.PATCH("/:id", h.UpdateDictionary)
		dictionary.DELETE("/:id", h.DeleteDictionary)
		dictionary.DELETE("/batch/remove", h.BatchDeleteDictionaries)
	}

	item := r.Group("/dictionary-item")
	{
		item.POST("/create", h.CreateDictionaryItem)
		item.GET("/list", h.ListDictionaryItems)
		item.GET("/dictionary/:dictionaryId", h.ListItemsByDictionary)
		item.GET("/next-value/:dictionaryId", h.NextItemValue)
		item.GET("/:id", h.GetDictionaryItem)
		item.PATCH("/:id", h.UpdateDictionaryItem)
		item.DELETE("/:id", h.DeleteDictionaryItem)
		item.DELETE("/batch/remove", h.BatchDeleteDictionaryItems)
	}

	user := r.Group("/user")
	{
		user.POST("/auth/register", h.Register)
		user.POST("/auth/login", h.Login)
		user.GET("/user/:id", h.GetUser)
	}

	system := r.Group("/system")
	{
		system.GET("/access-logs", h.ListAccessLogs)
		system.POST("/access-logs", h.CreateAccessLog)
		system.GET("/access-logs/:id", h.GetAccessLog)
		system.GET("/stats", h.GetAccessLogStats)
		system.GET("/geo-cache/stats", h.GetGeoCacheStats)
		system.DELETE("/geo-cache", h.ClearGeoCache)

		system.POST("/token/generate", h.GenerateToken)
		system.POST("/generate-token", h.GenerateToken)
		system.POST("/token/refresh", h.RefreshToken)
		system.POST("/token/verify", h.VerifyToken)
		system.POST("/token/decode", h.DecodeToken)
	}
}
