package location_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
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

// GetLocations godoc
// @Summary List storage locations
// @Tags Locations
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/locations [get]
func GetLocations(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	key := "locations:list:" + tenantID.String()
	list, err := cache.Through(resultCache, key, []string{cache.TagLocations}, cache.TTLReference, func() ([]models.Location, error) {
		var locations []models.Location
		err := gw.Tenant(ctx, tenantID).Order("name ASC").Find(&locations).Error
		return locations, err
	})
	if err != nil {
		log.Printf("[locations.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch locations"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Locations fetched successfully", list))
}

// CreateLocation godoc
// @Summary Create a storage location
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body models.LocationRequest true "Location details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/locations [post]
func CreateLocation(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	location := models.Location{
		UserID:      tenantID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := config.Gorm.WithContext(ctx).Create(&location).Error; err != nil {
		log.Printf("[locations.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save location"))
		return
	}

	resultCache.Invalidate(cache.TagLocations)
	c.Set("createdEntityID", location.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Location created successfully", location))
}

// UpdateLocation godoc
// @Summary Update a storage location
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Param location body models.LocationRequest true "Location details"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/locations/{id} [patch]
func UpdateLocation(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid location ID"))
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var location models.Location
	if err := gw.Tenant(ctx, tenantID).First(&location, "id = ?", locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Location not found"))
		} else {
			log.Printf("[locations.update] ERROR fetch id=%s err=%v", locationID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save location"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&location).Updates(map[string]any{
		"name":        req.Name,
		"description": req.Description,
	}).Error; err != nil {
		log.Printf("[locations.update] ERROR save id=%s err=%v", locationID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save location"))
		return
	}

	resultCache.Invalidate(cache.TagLocations)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location updated successfully", location))
}

// DeleteLocation godoc
// @Summary Delete a storage location
// @Description Batches stored at the location keep existing with the link cleared
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/locations/{id} [delete]
func DeleteLocation(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid location ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var location models.Location
	if err := gw.Tenant(ctx, tenantID).First(&location, "id = ?", locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Location not found"))
		} else {
			log.Printf("[locations.delete] ERROR fetch id=%s err=%v", locationID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete location"))
		}
		return
	}

	err = gw.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Batch{}).
			Where("user_id = ? AND location_id = ?", tenantID, locationID).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&location).Error
	})
	if err != nil {
		log.Printf("[locations.delete] ERROR id=%s err=%v", locationID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete location"))
		return
	}

	resultCache.Invalidate(cache.TagLocations, cache.TagBatches)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location deleted successfully", nil))
}
