package batch_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

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

func invalidateBatchReads() {
	// Batch quantity folds into the product's on-hand count, so product
	// and analytics reads go stale together
	resultCache.Invalidate(cache.TagBatches, cache.TagProducts, cache.TagAnalytics)
}

// GetBatches godoc
// @Summary List batches
// @Tags Batches
// @Produce json
// @Param product_id query string false "Filter by product"
// @Param expiring_days query int false "Only batches expiring within N days"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/batches [get]
func GetBatches(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
			return
		}
		productID = &id
	}
	var window time.Duration
	if raw := c.Query("expiring_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "expiring_days must be a positive integer"))
			return
		}
		window = time.Duration(days) * 24 * time.Hour
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	batches, err := gw.FindBatches(ctx, tenantID, productID, window)
	if err != nil {
		log.Printf("[batches.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch batches"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Batches fetched successfully", batches))
}

// CreateBatch godoc
// @Summary Create a batch
// @Description Records a received lot and adds its quantity to the product's stock
// @Tags Batches
// @Accept json
// @Produce json
// @Param batch body models.BatchRequest true "Batch details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/batches [post]
func CreateBatch(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	batch, err := gw.CreateBatch(ctx, tenantID, req)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product or location not found"))
			return
		}
		log.Printf("[batches.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save batch"))
		return
	}

	invalidateBatchReads()
	c.Set("createdEntityID", batch.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Batch created successfully", batch))
}

// UpdateBatch godoc
// @Summary Update a batch
// @Description A quantity change is applied to the product stock as a delta
// @Tags Batches
// @Accept json
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Param batch body models.UpdateBatchRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/batches/{id} [patch]
func UpdateBatch(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid batch ID"))
		return
	}

	var req models.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	batch, err := gw.UpdateBatch(ctx, tenantID, batchID, req)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Batch not found"))
		case errors.Is(err, gateway.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", map[string][]string{
				"quantity": {"change would drop the product's stock below zero"},
			}))
		default:
			log.Printf("[batches.update] ERROR id=%s err=%v", batchID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save batch"))
		}
		return
	}

	invalidateBatchReads()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Batch updated successfully", batch))
}

// DeleteBatch godoc
// @Summary Delete a batch
// @Description Removes the batch and subtracts its remaining quantity from the product
// @Tags Batches
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/batches/{id} [delete]
func DeleteBatch(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid batch ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := gw.DeleteBatch(ctx, tenantID, batchID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Batch not found"))
			return
		}
		log.Printf("[batches.delete] ERROR id=%s err=%v", batchID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete batch"))
		return
	}

	invalidateBatchReads()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Batch deleted successfully", nil))
}
