package alert_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/services"
	"github.com/gin-gonic/gin"
)

var alertService *services.AlertService

// Init wires the package's dependencies at startup
func Init(s *services.AlertService) {
	alertService = s
}

// GetStockAlerts godoc
// @Summary Get stock alerts
// @Description Out-of-stock and low-stock alerts for the tenant, most depleted first
// @Tags Alerts
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/alerts [get]
func GetStockAlerts(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	alerts, err := alertService.StockAlerts(ctx, tenantID)
	if err != nil {
		log.Printf("[alerts.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stock alerts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock alerts fetched successfully", alerts))
}

// GetAlertSummary godoc
// @Summary Get stock alert summary
// @Description Alert counts by type and severity
// @Tags Alerts
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/alerts/summary [get]
func GetAlertSummary(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	summary, err := alertService.AlertSummary(ctx, tenantID)
	if err != nil {
		log.Printf("[alerts.summary] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alert summary"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert summary fetched successfully", summary))
}

// GetReorderRecommendations godoc
// @Summary Get reorder recommendations
// @Description Suggested order quantities for alerting products, most urgent first
// @Tags Alerts
// @Produce json
// @Param days_of_stock query int false "Coverage window in days" default(30)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/alerts/reorder [get]
func GetReorderRecommendations(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	daysOfStock, err := strconv.Atoi(c.DefaultQuery("days_of_stock", "30"))
	if err != nil || daysOfStock < 1 {
		daysOfStock = services.DefaultDaysOfStock
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	recs, err := alertService.ReorderRecommendations(ctx, tenantID, daysOfStock)
	if err != nil {
		log.Printf("[alerts.reorder] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reorder recommendations"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reorder recommendations fetched successfully", recs))
}
