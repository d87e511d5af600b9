// @title Velos Inventory API
// @version 1.0
// @description Multi-tenant inventory and retail operations backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/activity_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/alert_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/analytics_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/batch_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/category_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/customer_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/location_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/product_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/purchase_order_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/sale_controller"
	"github.com/bry-ly/Velos-Inve-sub001/controllers/supplier_controller"
	_ "github.com/bry-ly/Velos-Inve-sub001/docs"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/routes"
	"github.com/bry-ly/Velos-Inve-sub001/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Result cache with hit/miss metrics
	resultCache := cache.New()
	resultCache.OnLookup = middleware.RecordCacheLookup
	middleware.InitActivityLogging(resultCache)

	// ✅ Wire the data access layer and services
	gw := gateway.New(config.Gorm, config.Pool)
	analyticsService := services.NewAnalyticsService(gw, resultCache)
	alertService := services.NewAlertService(gw, resultCache)

	product_controller.Init(gw, resultCache, alertService)
	category_controller.Init(gw, resultCache)
	supplier_controller.Init(gw, resultCache)
	customer_controller.Init(gw, resultCache)
	location_controller.Init(gw, resultCache)
	batch_controller.Init(gw, resultCache)
	sale_controller.Init(gw, resultCache)
	purchase_order_controller.Init(gw, resultCache)
	activity_controller.Init(gw, resultCache)
	analytics_controller.Init(analyticsService)
	alert_controller.Init(alertService)
	log.Println("✅ Services initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.MetricsMiddleware())

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	routes.SetupAuthRoutes(api)
	routes.SetupProductRoutes(api)
	routes.SetupCategoryRoutes(api)
	routes.SetupSupplierRoutes(api)
	routes.SetupCustomerRoutes(api)
	routes.SetupLocationRoutes(api)
	routes.SetupBatchRoutes(api)
	routes.SetupSaleRoutes(api)
	routes.SetupPurchaseOrderRoutes(api)
	routes.SetupAnalyticsRoutes(api)
	routes.SetupAlertRoutes(api)
	routes.SetupActivityRoutes(api)
	log.Println("✅ API routes registered")

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
