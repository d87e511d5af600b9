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

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product's attributes. Quantity changes go through the stock adjustment endpoint instead.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
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

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
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
		log.Printf("[products.update] ERROR fetch id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Manufacturer != nil {
		updates["manufacturer"] = *req.Manufacturer
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.LowStockThreshold != nil {
		updates["low_stock_threshold"] = *req.LowStockThreshold
	}
	if req.CategoryID != nil {
		var owned int64
		if err := gw.Tenant(ctx, tenantID).Model(&models.Category{}).
			Where("id = ?", *req.CategoryID).
			Count(&owned).Error; err != nil || owned == 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request",
				map[string][]string{"category_id": {"category not found"}}))
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.SupplierID != nil {
		var owned int64
		if err := gw.Tenant(ctx, tenantID).Model(&models.Supplier{}).
			Where("id = ?", *req.SupplierID).
			Count(&owned).Error; err != nil || owned == 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request",
				map[string][]string{"supplier_id": {"supplier not found"}}))
			return
		}
		updates["supplier_id"] = *req.SupplierID
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Nothing to update", product))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(product).Updates(updates).Error; err != nil {
		log.Printf("[products.update] ERROR save id=%s err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
		return
	}

	invalidateProductReads()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
