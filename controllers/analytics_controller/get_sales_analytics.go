package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
)

// GetSalesAnalytics godoc
// @Summary Get sales analytics
// @Description Sales count, revenue and recent sales for an optional inclusive date range
// @Tags Analytics
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.SalesAnalytics}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/analytics/sales [get]
func GetSalesAnalytics(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var r gateway.DateRange
	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid startDate, expected YYYY-MM-DD"))
			return
		}
		r.Start = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid endDate, expected YYYY-MM-DD"))
			return
		}
		r.End = &end
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	analytics, err := analyticsService.SalesAnalytics(ctx, tenantID, r)
	if err != nil {
		log.Printf("[analytics.sales] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales analytics retrieved successfully", analytics))
}
