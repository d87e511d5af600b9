package purchase_order_controller

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	gw          *gateway.Gateway
	resultCache *cache.ResultCache
)

// Init wires the package's dependencies at startup
func Init(g *gateway.Gateway, rc *cache.ResultCache) {
	gw = g
	resultCache = rc
}

// GetPurchaseOrders godoc
// @Summary List purchase orders
// @Tags PurchaseOrders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Filter by status" Enums(draft, ordered, received)
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/purchase-orders [get]
func GetPurchaseOrders(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	status := c.Query("status")
	switch status {
	case "", models.PurchaseOrderDraft, models.PurchaseOrderOrdered, models.PurchaseOrderReceived:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "status must be draft, ordered or received"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, total, err := gw.FindPurchaseOrders(ctx, tenantID, status, page, limit)
	if err != nil {
		log.Printf("[purchase_orders.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchase orders"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Purchase orders fetched successfully", orders, meta))
}

// CreatePurchaseOrder godoc
// @Summary Create a purchase order
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param order body models.PurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/purchase-orders [post]
func CreatePurchaseOrder(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.PurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := gw.CreatePurchaseOrder(ctx, tenantID, req)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product or supplier not found"))
			return
		}
		log.Printf("[purchase_orders.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save purchase order"))
		return
	}

	resultCache.Invalidate(cache.TagPurchaseOrders)
	c.Set("createdEntityID", order.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Purchase order created successfully", order))
}

// ReceivePurchaseOrder godoc
// @Summary Mark a purchase order received
// @Description Flips the status and adds every line item's quantity to stock atomically
// @Tags PurchaseOrders
// @Produce json
// @Param id path string true "Purchase order ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /api/v1/purchase-orders/{id}/receive [post]
func ReceivePurchaseOrder(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid purchase order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := gw.ReceivePurchaseOrder(ctx, tenantID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Purchase order not found"))
		case errors.Is(err, gateway.ErrAlreadyReceived):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Purchase order already received"))
		default:
			log.Printf("[purchase_orders.receive] ERROR id=%s err=%v", orderID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to receive purchase order"))
		}
		return
	}

	// Receipt changes stock levels, so product and analytics reads go stale
	resultCache.Invalidate(cache.TagPurchaseOrders, cache.TagProducts, cache.TagAnalytics)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase order received successfully", order))
}
