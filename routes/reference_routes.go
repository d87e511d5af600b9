package routes

import (
	"github.com/bry-ly/Velos-Inve-sub001/controllers/category_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/customer_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/location_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/supplier_controller"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes wires the category CRUD surface
func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AuthMiddleware())

	category.GET("", category_controller.GetCategories)

	mutating := category.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", category_controller.CreateCategory)
		mutating.PATCH("/:id", category_controller.UpdateCategory)
		mutating.DELETE("/:id", category_controller.DeleteCategory)
	}
}

// SetupSupplierRoutes wires the supplier CRUD surface
func SetupSupplierRoutes(rg *gin.RouterGroup) {
	supplier := rg.Group("/suppliers")
	supplier.Use(middleware.AuthMiddleware())

	supplier.GET("", supplier_controller.GetSuppliers)

	mutating := supplier.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", supplier_controller.CreateSupplier)
		mutating.PATCH("/:id", supplier_controller.UpdateSupplier)
		mutating.DELETE("/:id", supplier_controller.DeleteSupplier)
	}
}

// SetupCustomerRoutes wires the customer CRUD surface
func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	customer.Use(middleware.AuthMiddleware())

	customer.GET("", customer_controller.GetCustomers)

	mutating := customer.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", customer_controller.CreateCustomer)
		mutating.PATCH("/:id", customer_controller.UpdateCustomer)
		mutating.DELETE("/:id", customer_controller.DeleteCustomer)
	}
}

// SetupLocationRoutes wires the storage location CRUD surface
func SetupLocationRoutes(rg *gin.RouterGroup) {
	location := rg.Group("/locations")
	location.Use(middleware.AuthMiddleware())

	location.GET("", location_controller.GetLocations)

	mutating := location.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", location_controller.CreateLocation)
		mutating.PATCH("/:id", location_controller.UpdateLocation)
		mutating.DELETE("/:id", location_controller.DeleteLocation)
	}
}
