package routes

import (
	"github.com/bry-ly/Velos-Inve-sub001/controllers/auth_controller"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	auth.POST("/register", auth_controller.Register)
	auth.POST("/login", auth_controller.Login)
	auth.POST("/logout", auth_controller.Logout)

	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", auth_controller.GetMe)
	}
}
