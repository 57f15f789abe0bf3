package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/services"
)

// HikeController handles hike-related API endpoints
type HikeController struct {
	hikeService *services.HikeService
}

// NewHikeController creates a new hike controller
func NewHikeController() *HikeController {
	return &HikeController{hikeService: services.NewHikeService()}
}

// ListHikes retrieves hikes with pagination, search and sorting
func (c *HikeController) ListHikes(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.HikeFilter{
		Page:      page,
		PageSize:  pageSize,
		Search:    ctx.Query("search"),
		SortBy:    ctx.DefaultQuery("sortBy", "date"),
		SortOrder: ctx.DefaultQuery("sortOrder", "asc"),
		GuideID:   ctx.Query("guideId"),
	}

	response, err := c.hikeService.ListHikes(filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve hikes: " + err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetHike retrieves a hike by ID with its live booking count
func (c *HikeController) GetHike(ctx *gin.Context) {
	hikeID := ctx.Param("id")
	if hikeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Hike ID is required"})
		return
	}

	detail, err := c.hikeService.GetHikeDetail(hikeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   detail,
	})
}

// CreateHike publishes a new hike owned by the calling guide
func (c *HikeController) CreateHike(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	var req dto.CreateHikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	hike, err := c.hikeService.CreateHike(req, principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   hike,
	})
}

// UpdateHike edits a hike owned by the calling guide (admins can edit any)
func (c *HikeController) UpdateHike(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	hikeID := ctx.Param("id")

	var req dto.UpdateHikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	isAdmin := principal.Role == models.RoleAdmin
	hike, err := c.hikeService.UpdateHike(hikeID, req, principal.UserID, isAdmin)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   hike,
	})
}

// DeleteHike removes a hike owned by the calling guide (admins can delete any)
func (c *HikeController) DeleteHike(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	hikeID := ctx.Param("id")

	isAdmin := principal.Role == models.RoleAdmin
	if err := c.hikeService.DeleteHike(hikeID, principal.UserID, isAdmin); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Hike deleted",
	})
}
