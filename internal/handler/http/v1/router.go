package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты: аутентификация и справочная информация
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/cities", h.listCities)
	api.GET("/privacy/transparency", h.transparency)
	api.GET("/system/health", h.healthCheck)

	// Маршруты, требующие действительного токена доступа
	authed := api.Group("")
	authed.Use(JWTAuthMiddleware(h.tokens, h.logger))
	{
		authed.GET("/auth/me", h.me)

		signals := authed.Group("/signals")
		{
			signals.POST("", h.createSignal)
			signals.GET("", h.listSignals)
			signals.POST("/:id/validate", h.validateSignal)
		}

		authed.GET("/areas/scores", h.listAreaScores)
		authed.GET("/hotspots", h.listHotspots)
		authed.POST("/routes/plan", h.planRoute)

		// Дашборд доступен только для ролей ngo/city/admin
		dashboard := authed.Group("/dashboard")
		dashboard.Use(DashboardRoleMiddleware(h.logger))
		{
			dashboard.GET("/metrics", h.dashboardMetrics)
			dashboard.GET("/trends", h.riskTrends)
			dashboard.POST("/export", h.requestExport)
			dashboard.GET("/export/:id", h.getExportResult)
		}
	}
}
