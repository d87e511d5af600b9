package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMe godoc
// @Summary Get the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/me [get]
func GetMe(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).First(&user, "id = ?", tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		} else {
			log.Printf("[auth.me] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account fetched successfully", user))
}

// Logout godoc
// @Summary Logout
// @Description Clears the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	if email, ok := middleware.GetUserEmailFromContext(c); ok {
		log.Printf("[auth.logout] logging out: %s", email)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
