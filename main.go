package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/hikeup-backend/api/v1"
	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/database"
)

func main() {
	// Load environment and build the process-wide config once
	config.LoadEnv()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Connect to database
	database.Initialize(cfg.DatabaseURL)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Dev-User"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router.Group("/api/v1"), cfg)

	// Start server
	log.Printf("🚀 HikeUp API starting on port %s", cfg.Port)
	log.Printf("💡 Admin allowlist: %d entries", cfg.AdminAllowlist.Size())
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
