package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	authorized := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Результаты анализа земель
	land := authorized.Group("/land-data")
	{
		land.GET("", h.listLandData)
		land.GET("/summary", h.getSummary)
		land.GET("/:id", h.getLandData)
		land.POST("/analyze", RateLimitMiddleware(h.cfg.AnalyzeRateLimit), h.analyzeLocation)
		land.POST("/:id/alert", h.sendAlert)
	}

	// Избранные точки
	favorites := authorized.Group("/favorites")
	{
		favorites.GET("", h.listFavorites)
		favorites.POST("", h.addFavorite)
		favorites.DELETE("/:id", h.removeFavorite)
	}

	// Кэш показаний
	authorized.DELETE("/cache", h.clearCache)
}
