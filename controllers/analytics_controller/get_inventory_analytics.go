package analytics_controller

import (
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/services"
	"github.com/gin-gonic/gin"
)

var analyticsService *services.AnalyticsService

// Init wires the package's dependencies at startup
func Init(s *services.AnalyticsService) {
	analyticsService = s
}

// GetInventoryAnalytics godoc
// @Summary Get inventory analytics
// @Description Valuation snapshot: totals, low/out-of-stock counts, value by category
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.InventoryAnalytics}
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/analytics/inventory [get]
func GetInventoryAnalytics(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	log.Printf("[analytics.inventory] start tenant=%s", tenantID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := analyticsService.InventoryAnalytics(ctx, tenantID)
	if err != nil {
		log.Printf("[analytics.inventory] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	log.Printf("[analytics.inventory] respond 200 products=%d value=%.2f low=%d out=%d",
		snapshot.TotalProducts, snapshot.TotalValue, snapshot.LowStockCount, snapshot.OutOfStockCount)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory analytics retrieved successfully", snapshot))
}
