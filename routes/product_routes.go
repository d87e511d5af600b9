package routes

import (
	"github.com/bry-ly/Velos-Inve-sub001/controllers/product_controller"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AuthMiddleware())

	product.GET("", product_controller.GetProducts)
	product.GET("/:id", product_controller.GetProductByID)
	product.GET("/:id/movements", product_controller.GetProductMovements)

	mutating := product.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", product_controller.CreateProduct)
		mutating.PATCH("/:id", product_controller.UpdateProduct)
		mutating.DELETE("/:id", product_controller.DeleteProduct)
		mutating.POST("/:id/adjust-stock", product_controller.AdjustStock)
		mutating.PUT("/:id/threshold", product_controller.SetThreshold)
	}
}
