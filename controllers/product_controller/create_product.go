package product_controller

import (
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/utils"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product for the authenticated tenant
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/products [post]
func CreateProduct(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Referenced category and supplier must belong to the tenant
	if req.CategoryID != nil {
		var owned int64
		if err := gw.Tenant(ctx, tenantID).Model(&models.Category{}).
			Where("id = ?", *req.CategoryID).
			Count(&owned).Error; err != nil {
			log.Printf("[products.create] ERROR category ownership err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
			return
		}
		if owned == 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request",
				map[string][]string{"category_id": {"category not found"}}))
			return
		}
	}
	if req.SupplierID != nil {
		var owned int64
		if err := gw.Tenant(ctx, tenantID).Model(&models.Supplier{}).
			Where("id = ?", *req.SupplierID).
			Count(&owned).Error; err != nil {
			log.Printf("[products.create] ERROR supplier ownership err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
			return
		}
		if owned == 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request",
				map[string][]string{"supplier_id": {"supplier not found"}}))
			return
		}
	}

	product := models.Product{
		UserID:            tenantID,
		Name:              req.Name,
		SKU:               req.SKU,
		Manufacturer:      req.Manufacturer,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[products.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save product"))
		return
	}

	invalidateProductReads()
	c.Set("createdEntityID", product.ID.String())

	log.Printf("[products.create] respond 201 id=%s", product.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
