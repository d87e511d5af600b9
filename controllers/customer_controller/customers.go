package customer_controller

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

// GetCustomers godoc
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/customers [get]
func GetCustomers(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	key := "customers:list:" + tenantID.String()
	list, err := cache.Through(resultCache, key, []string{cache.TagCustomers}, cache.TTLReference, func() ([]models.Customer, error) {
		var customers []models.Customer
		err := gw.Tenant(ctx, tenantID).Order("name ASC").Find(&customers).Error
		return customers, err
	})
	if err != nil {
		log.Printf("[customers.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers fetched successfully", list))
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body models.CustomerRequest true "Customer details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/customers [post]
func CreateCustomer(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer := models.Customer{
		UserID:  tenantID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := config.Gorm.WithContext(ctx).Create(&customer).Error; err != nil {
		log.Printf("[customers.create] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save customer"))
		return
	}

	resultCache.Invalidate(cache.TagCustomers)
	c.Set("createdEntityID", customer.ID.String())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", customer))
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param customer body models.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/customers/{id} [patch]
func UpdateCustomer(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := gw.Tenant(ctx, tenantID).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		} else {
			log.Printf("[customers.update] ERROR fetch id=%s err=%v", customerID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save customer"))
		}
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
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

	if len(updates) > 0 {
		if err := config.Gorm.WithContext(ctx).Model(&customer).Updates(updates).Error; err != nil {
			log.Printf("[customers.update] ERROR save id=%s err=%v", customerID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save customer"))
			return
		}
		resultCache.Invalidate(cache.TagCustomers)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", customer))
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Sales that reference the customer keep their snapshot data
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var customer models.Customer
	if err := gw.Tenant(ctx, tenantID).First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		} else {
			log.Printf("[customers.delete] ERROR fetch id=%s err=%v", customerID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete customer"))
		}
		return
	}

	// Detach past sales then remove the customer row
	err = gw.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Sale{}).
			Where("user_id = ? AND customer_id = ?", tenantID, customerID).
			Update("customer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		log.Printf("[customers.delete] ERROR id=%s err=%v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete customer"))
		return
	}

	resultCache.Invalidate(cache.TagCustomers, cache.TagSales)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer deleted successfully", nil))
}
