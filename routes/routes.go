// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motostock-api/config"
	"motostock-api/controllers"
	"motostock-api/middleware"
	"motostock-api/repositories"
	"motostock-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories and services
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService, cfg.JWTSecret)
	motorcycleController := controllers.NewMotorcycleController(motorcycleRepo)
	userController := controllers.NewUserController(userRepo, emailService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate-limited against credential guessing)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(10, 5))
	{
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/auth/me", authController.Me)

		// Motorcycle routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("/", motorcycleController.List)
			motorcycles.GET("/search", motorcycleController.Search)
			motorcycles.GET("/:id", motorcycleController.Get)
			motorcycles.POST("/", motorcycleController.Create)
			motorcycles.PUT("/:id", motorcycleController.Update)
			motorcycles.DELETE("/:id", motorcycleController.Delete)
		}

		// User management (admin only)
		users := protected.Group("/users")
		users.Use(middleware.AdminRequired())
		{
			users.GET("/", userController.List)
			users.GET("/:id", userController.Get)
			users.POST("/", userController.Create)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
			users.PUT("/:id/password", userController.UpdatePassword)
		}
	}
}
