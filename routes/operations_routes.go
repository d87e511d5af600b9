package routes

import (
	"github.com/bry-ly/Velos-Inve-sub001/controllers/batch_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/purchase_order_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/sale_controller"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/gin-gonic/gin"
)

// SetupSaleRoutes wires sales recording and history
func SetupSaleRoutes(rg *gin.RouterGroup) {
	sale := rg.Group("/sales")
	sale.Use(middleware.AuthMiddleware())

	sale.GET("", sale_controller.GetSales)

	mutating := sale.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", sale_controller.CreateSale)
	}
}

// SetupBatchRoutes wires batch tracking
func SetupBatchRoutes(rg *gin.RouterGroup) {
	batch := rg.Group("/batches")
	batch.Use(middleware.AuthMiddleware())

	batch.GET("", batch_controller.GetBatches)

	mutating := batch.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", batch_controller.CreateBatch)
		mutating.PATCH("/:id", batch_controller.UpdateBatch)
		mutating.DELETE("/:id", batch_controller.DeleteBatch)
	}
}

// SetupPurchaseOrderRoutes wires purchase order creation and receipt
func SetupPurchaseOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/purchase-orders")
	order.Use(middleware.AuthMiddleware())

	order.GET("", purchase_order_controller.GetPurchaseOrders)

	mutating := order.Group("")
	mutating.Use(middleware.ActivityLoggingMiddleware())
	{
		mutating.POST("", purchase_order_controller.CreatePurchaseOrder)
		mutating.POST("/:id/receive", purchase_order_controller.ReceivePurchaseOrder)
	}
}
