package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "solarhub-backend/api/swagger" // swagger docs
	"solarhub-backend/internal/handler"
	"solarhub-backend/internal/middleware"
	"solarhub-backend/internal/seed"
	"solarhub-backend/internal/service"
	"solarhub-backend/internal/websocket"
	"solarhub-backend/pkg/response"
)

// @title           SolarHub API
// @version         1.0
// @description     Backend for the SolarHub marketing site, admin dashboard, and customer portal. All collections are in-memory demo data.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	notificationService := service.NewNotificationService(seed.Notifications(), wsHub)
	userService := service.NewUserService(seed.Users(), notificationService)
	productService := service.NewProductService(seed.Products(), notificationService)
	taskService := service.NewTaskService(seed.Tasks(), userService)
	departmentService := service.NewDepartmentService(seed.Departments(), userService)
	catalogService := service.NewCatalogService(seed.Catalog())
	portalService := service.NewPortalService(seed.Orders(), seed.Plants(), seed.Profile(), seed.EnergyReadings())
	dashboardService := service.NewDashboardService(seed.Revenue(), seed.Activities())
	settingsService := service.NewSettingsService(seed.Settings())

	// Initialize Handlers
	homeHandler := handler.NewHomeHandler()
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	taskHandler := handler.NewTaskHandler(taskService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	portalHandler := handler.NewPortalHandler(portalService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	homeHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	productHandler.RegisterRoutes(router.Group(""))
	taskHandler.RegisterRoutes(router.Group(""))
	departmentHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))
	portalHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))
	settingsHandler.RegisterRoutes(router.Group(""))
	notificationHandler.RegisterRoutes(router.Group(""))

	// Unknown paths get a JSON 404 instead of the default empty body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Page not found"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
