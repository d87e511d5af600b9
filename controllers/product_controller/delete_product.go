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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product. Products referenced by historical sales cannot be removed.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
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

	product, err := gw.ProductByID(ctx, tenantID, productID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[products.delete] ERROR fetch id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Soft-reference rule: products in historical sales stay.
	referenced, err := gw.ProductReferencedBySales(ctx, tenantID, productID)
	if err != nil {
		log.Printf("[products.delete] ERROR sale refs id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if referenced {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is referenced by past sales and cannot be deleted"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(product).Error; err != nil {
		log.Printf("[products.delete] ERROR delete id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	invalidateProductReads()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
