package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	writes := []gin.HandlerFunc{}
	if h.cfg.WriteRateLimit != "" {
		writes = append(writes, WriteRateLimitMiddleware(h.cfg.WriteRateLimit, h.logger))
	}

	alerts := protected.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", append(writes, h.createAlert)...)
		alerts.GET("/active", h.activeBroadcast)
		alerts.GET("/stream", h.streamAlerts)
		alerts.POST("/resolve", append(writes, h.resolveActive)...)
		alerts.POST("/:id/respond", append(writes, h.respond)...)
		alerts.DELETE("/:id", append(writes, h.deleteAlert)...)
	}

	protected.PUT("/location", h.updateLocation)
	protected.GET("/mutations", h.listMutations)

	session := protected.Group("/session")
	{
		session.POST("/reload", h.reload)
		session.POST("/logout", h.logout)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
