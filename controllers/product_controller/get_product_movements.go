package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const movementHistoryLimit = 50

// GetProductMovements godoc
// @Summary Get a product's stock movement history
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id}/movements [get]
func GetProductMovements(c *gin.Context) {
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

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Confirm ownership first so a foreign product reads as missing
	if _, err := gw.ProductByID(ctx, tenantID, productID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[products.movements] ERROR fetch id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch movements"))
		return
	}

	movements, err := gw.ProductMovements(ctx, tenantID, productID, movementHistoryLimit)
	if err != nil {
		log.Printf("[products.movements] ERROR list id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch movements"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock movements fetched successfully", movements))
}
