package category_controller

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

// GetCategories godoc
// @Summary List categories with product counts
// @Tags Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	key := "categories:list:" + tenantID.String()
	tags := []string{cache.TagCategories, cache.TagProducts}
	list, err := cache.Through(resultCache, key, tags, cache.TTLReference, func() ([]models.CategoryWithProducts, error) {
		var categories []models.Category
		if err := gw.Tenant(ctx, tenantID).
			Order("name ASC").
			Find(&categories).Error; err != nil {
			return nil, err
		}

		type countRow struct {
			CategoryID uuid.UUID
			Count      int
		}
		var counts []countRow
		if err := gw.Tenant(ctx, tenantID).Model(&models.Product{}).
			Select("category_id, COUNT(*) AS count").
			Where("category_id IS NOT NULL").
			Group("category_id").
			Scan(&counts).Error; err != nil {
			return nil, err
		}
		countByID := make(map[uuid.UUID]int, len(counts))
		for _, row := range counts {
			countByID[row.CategoryID] = row.Count
		}

		out := make([]models.CategoryWithProducts, 0, len(categories))
		for _, cat := range categories {
			out = append(out, models.CategoryWithProducts{
				ID:          cat.ID,
				Name:        cat.Name,
				Description: cat.Description,
				Products:    countByID[cat.ID],
				CreatedAt:   cat.CreatedAt,
				UpdatedAt:   cat.UpdatedAt,
			})
		}
		return out, nil
	})
	if err != nil {
		log.Printf("[categories.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", list))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/categories [post]
func CreateCategory(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{
		UserID:      tenantID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[categories.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save category"))
		return
	}

	resultCache.Invalidate(cache.TagCategories, cache.TagAnalytics)
	c.Set("createdEntityID", category.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body models.CategoryRequest true "Category details"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := gw.Tenant(ctx, tenantID).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			log.Printf("[categories.update] ERROR fetch id=%s err=%v", categoryID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save category"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&category).Updates(map[string]any{
		"name":        req.Name,
		"description": req.Description,
	}).Error; err != nil {
		log.Printf("[categories.update] ERROR save id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save category"))
		return
	}

	resultCache.Invalidate(cache.TagCategories, cache.TagAnalytics)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Products keep existing and fall back to Uncategorized
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := gw.Tenant(ctx, tenantID).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			log.Printf("[categories.delete] ERROR fetch id=%s err=%v", categoryID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		}
		return
	}

	// Detach products first so they read as Uncategorized, then remove the row
	err = gw.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("user_id = ? AND category_id = ?", tenantID, categoryID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		log.Printf("[categories.delete] ERROR id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	resultCache.Invalidate(cache.TagCategories, cache.TagProducts, cache.TagAnalytics)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
