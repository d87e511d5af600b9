package supplier_controller

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

// GetSuppliers godoc
// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/suppliers [get]
func GetSuppliers(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	key := "suppliers:list:" + tenantID.String()
	list, err := cache.Through(resultCache, key, []string{cache.TagSuppliers}, cache.TTLReference, func() ([]models.Supplier, error) {
		var suppliers []models.Supplier
		err := gw.Tenant(ctx, tenantID).Order("name ASC").Find(&suppliers).Error
		return suppliers, err
	})
	if err != nil {
		log.Printf("[suppliers.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suppliers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suppliers fetched successfully", list))
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param supplier body models.SupplierRequest true "Supplier details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/suppliers [post]
func CreateSupplier(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	supplier := models.Supplier{
		UserID:      tenantID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	}
	if err := config.Gorm.WithContext(ctx).Create(&supplier).Error; err != nil {
		log.Printf("[suppliers.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save supplier"))
		return
	}

	resultCache.Invalidate(cache.TagSuppliers)
	c.Set("createdEntityID", supplier.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Supplier created successfully", supplier))
}

// UpdateSupplier godoc
// @Summary Update a supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Param supplier body models.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/suppliers/{id} [patch]
func UpdateSupplier(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier ID"))
		return
	}

	var req models.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var supplier models.Supplier
	if err := gw.Tenant(ctx, tenantID).First(&supplier, "id = ?", supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
		} else {
			log.Printf("[suppliers.update] ERROR fetch id=%s err=%v", supplierID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save supplier"))
		}
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := config.Gorm.WithContext(ctx).Model(&supplier).Updates(updates).Error; err != nil {
			log.Printf("[suppliers.update] ERROR save id=%s err=%v", supplierID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save supplier"))
			return
		}
		resultCache.Invalidate(cache.TagSuppliers)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier updated successfully", supplier))
}

// DeleteSupplier godoc
// @Summary Delete a supplier
// @Description Products referencing this supplier keep existing with the link cleared
// @Tags Suppliers
// @Produce json
// @Param id path string true "Supplier ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/suppliers/{id} [delete]
func DeleteSupplier(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid supplier ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var supplier models.Supplier
	if err := gw.Tenant(ctx, tenantID).First(&supplier, "id = ?", supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
		} else {
			log.Printf("[suppliers.delete] ERROR fetch id=%s err=%v", supplierID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete supplier"))
		}
		return
	}

	err = gw.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("user_id = ? AND supplier_id = ?", tenantID, supplierID).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&supplier).Error
	})
	if err != nil {
		log.Printf("[suppliers.delete] ERROR id=%s err=%v", supplierID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete supplier"))
		return
	}

	resultCache.Invalidate(cache.TagSuppliers, cache.TagProducts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Supplier deleted successfully", nil))
}
