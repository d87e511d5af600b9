package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Retrieve the tenant's products with pagination and optional filtering
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Case-insensitive substring on name, SKU, manufacturer"
// @Param category_id query string false "Filter by category"
// @Param supplier_id query string false "Filter by supplier"
// @Param low_stock query bool false "Only products at or below their threshold"
// @Param out_of_stock query bool false "Only products with zero quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/products [get]
func GetProducts(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	// Step 2: Build filter from optional query params
	var filter gateway.ProductFilter
	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := c.Query("supplier_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.SupplierID = &id
		}
	}
	filter.LowStockOnly = c.Query("low_stock") == "true"
	filter.OutOfStockOnly = c.Query("out_of_stock") == "true"

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, total, err := gw.FindProducts(ctx, tenantID, filter, page, limit)
	if err != nil {
		log.Printf("[products.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, meta))
}
