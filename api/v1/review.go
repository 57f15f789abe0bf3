package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/services"
)

// ReviewController handles review-related API endpoints
type ReviewController struct {
	reviewService *services.ReviewService
}

// NewReviewController creates a new review controller
func NewReviewController(cfg *config.Config) *ReviewController {
	return &ReviewController{reviewService: services.NewReviewService(cfg)}
}

// CreateReview stores a review for a hike the calling user participated in
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	hikeID := ctx.Param("id")

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	review, err := c.reviewService.Create(hikeID, principal.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   review,
	})
}

// ListHikeReviews retrieves all reviews for a hike
func (c *ReviewController) ListHikeReviews(ctx *gin.Context) {
	hikeID := ctx.Param("id")

	reviews, err := c.reviewService.ListForHike(hikeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   reviews,
	})
}
