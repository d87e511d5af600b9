package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/bry-ly/Velos-Inve-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register godoc
// @Summary Register a new account
// @Description Creates an account and returns a JWT; the token is also set as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.Gorm.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&existing).Error; err != nil {
		log.Printf("[auth.register] ERROR email check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}

	user := models.User{
		Email:       req.Email,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	}
	if err := user.SetPassword(req.Password); err != nil {
		log.Printf("[auth.register] ERROR hash err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.register] ERROR create err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.register] ERROR token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)
	log.Printf("[auth.register] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}

// Login godoc
// @Summary Login with email and password
// @Description Returns a JWT and sets it as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[auth.login] user not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[auth.login] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		log.Printf("[auth.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] ERROR token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	setAuthCookie(c, token)
	log.Printf("[auth.login] success: %s (%s)", user.Email, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", gin.H{
		"user":  user,
		"token": token,
	}))
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)
}
