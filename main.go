// File: /main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"motostock-api/config"
	"motostock-api/database"
	"motostock-api/middleware"
	"motostock-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database; a connect failure is fatal for the process
	db, err := database.Initialize(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed the initial admin account on an empty database
	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Start server
	log.Printf("Starting MotoStock API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
