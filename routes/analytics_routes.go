package routes

import (
	"github.com/bry-ly/Velos-Inve-sub001/controllers/activity_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/alert_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/analytics_controller"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes wires the read-only analytics surface
func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())

	analytics.GET("/inventory", analytics_controller.GetInventoryAnalytics)
	analytics.GET("/sales", analytics_controller.GetSalesAnalytics)
}

// SetupAlertRoutes wires stock alerts and reorder recommendations
func SetupAlertRoutes(rg *gin.RouterGroup) {
	alerts := rg.Group("/alerts")
	alerts.Use(middleware.AuthMiddleware())

	alerts.GET("", alert_controller.GetStockAlerts)
	alerts.GET("/summary", alert_controller.GetAlertSummary)
	alerts.GET("/reorder", alert_controller.GetReorderRecommendations)
}

// SetupActivityRoutes wires the audit trail feed
func SetupActivityRoutes(rg *gin.RouterGroup) {
	activity := rg.Group("/activity")
	activity.Use(middleware.AuthMiddleware())

	activity.GET("", activity_controller.GetActivityFeed)
}
