package main

import (
	"log"
	"time"

	"dashboard_api/internal/config"
	"dashboard_api/internal/database"
	"dashboard_api/internal/handlers"
	"dashboard_api/internal/redis"
	"dashboard_api/internal/repository"
	"dashboard_api/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, redisClient, cfg.JWTSecret)
	userService := services.NewUserService(userRepo, settingsRepo, productRepo, customerRepo, orderRepo)
	customerService := services.NewCustomerService(customerRepo, orderRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, productRepo, notificationRepo, redisClient)
	dashboardService := services.NewDashboardService(orderRepo, customerRepo, productRepo, activityRepo, redisClient, cacheTTL)
	reportService := services.NewReportService(reportRepo, orderRepo, productRepo, customerRepo)
	notificationService := services.NewNotificationService(notificationRepo, redisClient, cacheTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, productService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reportHandler := handlers.NewReportHandler(reportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	userHandler := handlers.NewUserHandler(userService)

	// Setup routes
	router := gin.Default()

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api := router.Group("/api")
	api.Use(handlers.AuthMiddleware(authService))
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/metrics", dashboardHandler.GetMetrics)
			dashboard.GET("/activities", dashboardHandler.GetActivities)
			dashboard.POST("/activities", dashboardHandler.CreateActivity)
			dashboard.PUT("/activities/:id", dashboardHandler.UpdateActivity)
			dashboard.DELETE("/activities/:id", dashboardHandler.DeleteActivity)
			dashboard.GET("/products", dashboardHandler.GetProducts)
			dashboard.POST("/products", dashboardHandler.CreateProduct)
			dashboard.PUT("/products/:id", dashboardHandler.UpdateProduct)
			dashboard.DELETE("/products/:id", dashboardHandler.DeleteProduct)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/analytics", customerHandler.GetCustomerAnalytics)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/analytics", orderHandler.GetOrderAnalytics)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.POST("/sales", reportHandler.GenerateSalesReport)
			reports.POST("/inventory", reportHandler.GenerateInventoryReport)
			reports.POST("/customer", reportHandler.GenerateCustomerReport)
			reports.DELETE("/:id", reportHandler.DeleteReport)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.GET("/count", notificationHandler.GetCount)
			notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		user := api.Group("/user")
		{
			user.GET("/profile", userHandler.GetProfile)
			user.PUT("/profile", userHandler.UpdateProfile)
			user.GET("/statistics", userHandler.GetStatistics)
			user.GET("/settings", userHandler.GetSettings)
			user.PUT("/settings", userHandler.UpdateSettings)
			user.POST("/settings/reset", userHandler.ResetSettings)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
