package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/middleware"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authService := services.NewAuthService(cfg)

	// Every other request resolves a principal first; routes then state
	// the roles they require.
	resolved := router.Group("")
	resolved.Use(middleware.AuthMiddleware(authService))

	authenticated := middleware.RequireRole(models.RoleHiker, models.RoleGuide, models.RoleAdmin)

	// Account endpoints
	authController := NewAuthController()
	authGroup := resolved.Group("/auth")
	{
		authGroup.GET("/me", authenticated, authController.GetCurrentUser)
		authGroup.PUT("/me", authenticated, authController.UpdateProfile)
		authGroup.DELETE("/me", authenticated, authController.DeleteAccount)
		authGroup.POST("/me/guide", middleware.RequireRole(models.RoleHiker), authController.BecomeGuide)
	}

	// Hike endpoints - listings are public, publishing requires a guide
	hikeController := NewHikeController()
	bookingController := NewBookingController()
	reviewController := NewReviewController(cfg)
	hikeGroup := resolved.Group("/hikes")
	{
		hikeGroup.GET("", hikeController.ListHikes)
		hikeGroup.GET("/:id", hikeController.GetHike)
		hikeGroup.GET("/:id/reviews", reviewController.ListHikeReviews)

		hikeGroup.POST("", middleware.RequireRole(models.RoleGuide, models.RoleAdmin), hikeController.CreateHike)
		hikeGroup.PUT("/:id", middleware.RequireRole(models.RoleGuide, models.RoleAdmin), hikeController.UpdateHike)
		hikeGroup.DELETE("/:id", middleware.RequireRole(models.RoleGuide, models.RoleAdmin), hikeController.DeleteHike)

		hikeGroup.POST("/:id/bookings", authenticated, bookingController.JoinHike)
		hikeGroup.DELETE("/:id/bookings", authenticated, bookingController.LeaveHike)
		hikeGroup.POST("/:id/reviews", authenticated, reviewController.CreateReview)
	}

	// Booking listing for the current user
	resolved.GET("/bookings", authenticated, bookingController.ListMyBookings)

	// Admin endpoints - protected by RequireRole(admin)
	adminController := NewAdminController(cfg)
	adminGroup := resolved.Group("/admin")
	adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/users", adminController.ListUsers)
		adminGroup.DELETE("/users/:id", adminController.DeleteUser)
		adminGroup.DELETE("/hikes/:id", adminController.DeleteHike)
		adminGroup.DELETE("/reviews/:id", adminController.DeleteReview)
	}
}
