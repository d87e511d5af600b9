package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdjustStock godoc
// @Summary Adjust product stock
// @Description Apply a signed quantity delta; the movement is recorded in the same transaction
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param adjustment body models.AdjustStockRequest true "Signed quantity change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id}/adjust-stock [post]
func AdjustStock(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := gw.AdjustStock(ctx, tenantID, productID, req.Change, models.MovementAdjustment, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		case errors.Is(err, gateway.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request",
				map[string][]string{"change": {"adjustment would drop quantity below zero"}}))
		default:
			log.Printf("[products.adjust-stock] ERROR id=%s err=%v", productID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to adjust stock"))
		}
		return
	}

	invalidateProductReads()

	log.Printf("[products.adjust-stock] respond 200 id=%s change=%d qty=%d", productID, req.Change, product.Quantity)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock adjusted successfully", product))
}
