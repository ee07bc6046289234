package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"package-tracker/internal/handlers"
	"package-tracker/internal/middleware"
	"package-tracker/internal/repositories"
	"package-tracker/internal/services"
	"package-tracker/pkg/config"
	"package-tracker/pkg/database"
	"package-tracker/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	packageRepo := repositories.NewPackageRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)
	packageService := services.NewPackageService(packageRepo, config.AppConfig.Lifecycle.StrictStatusTransitions)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)
	exportService := services.NewExportService()

	packageHandler := handlers.NewPackageHandler(packageService, exportService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())

	// Setup routes
	setupRoutes(router, packageHandler, userHandler, authHandler, healthHandler)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
}

func setupRoutes(
	router *gin.Engine,
	packageHandler *handlers.PackageHandler,
	userHandler *handlers.UserHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.POST("/auth/login", authHandler.Login)

		api.GET("/deliveries", userHandler.ListDeliveryPersons)
		api.POST("/deliveries", userHandler.CreateDeliveryPerson)

		api.GET("/packages", packageHandler.ListPackages)
		api.POST("/packages", packageHandler.CreatePackage)
		api.GET("/packages/export", packageHandler.ExportPackages)
		api.GET("/packages/:id", packageHandler.GetPackage)
		api.PUT("/packages/:id", packageHandler.UpdatePackage)
		api.PUT("/packages/:id/status", packageHandler.UpdatePackageStatus)
		api.DELETE("/packages/:id", packageHandler.DeletePackage)

		// Legacy routes kept for older front-end builds
		api.GET("/map-data", packageHandler.MapData)
		api.GET("/locations", packageHandler.Locations)
	}
}
