package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Записи о катастрофах
	crashes := api.Group("/crashes")
	{
		crashes.GET("", h.listCrashes)
		crashes.GET("/search", h.searchCrashes)
		crashes.GET("/types", h.listTypes)
		crashes.GET("/:id", h.getCrash)
		crashes.GET("/:id/related", h.relatedCrashes)
		crashes.GET("/:id/weather", h.crashWeather)
	}

	// Агрегаты панели
	api.GET("/dashboard", h.getDashboard)
	stats := api.Group("/stats")
	{
		stats.GET("/summary", h.getSummary)
		stats.GET("/decades", h.getDecades)
		stats.GET("/years", h.getYears)
		stats.GET("/types", h.getTypeStats)
	}

	// Операции, требующие API-ключа
	admin := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/dataset/reload", h.reloadDataset)
		admin.POST("/weather/prefetch", h.prefetchWeather)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
