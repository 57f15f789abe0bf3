package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/services"
)

// AdminController handles moderation endpoints. All routes registered for
// it sit behind RequireRole(admin).
type AdminController struct {
	userService   *services.UserService
	hikeService   *services.HikeService
	reviewService *services.ReviewService
}

// NewAdminController creates a new admin controller
func NewAdminController(cfg *config.Config) *AdminController {
	return &AdminController{
		userService:   services.NewUserService(),
		hikeService:   services.NewHikeService(),
		reviewService: services.NewReviewService(cfg),
	}
}

// ListUsers retrieves users with pagination for the admin dashboard
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.UserFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   ctx.Query("search"),
	}

	response, err := c.userService.ListUsers(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// DeleteUser soft-deletes any user account
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID := ctx.Param("id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "User ID is required"})
		return
	}

	if err := c.userService.DeleteAccount(userID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}

// DeleteHike removes any hike
func (c *AdminController) DeleteHike(ctx *gin.Context) {
	hikeID := ctx.Param("id")

	if err := c.hikeService.DeleteHike(hikeID, "", true); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Hike deleted",
	})
}

// DeleteReview removes any review
func (c *AdminController) DeleteReview(ctx *gin.Context) {
	reviewID := ctx.Param("id")

	if err := c.reviewService.Delete(reviewID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Review deleted",
	})
}
