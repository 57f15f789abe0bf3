package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/services"
)

// BookingController handles booking-related API endpoints
type BookingController struct {
	bookingService *services.BookingService
}

// NewBookingController creates a new booking controller
func NewBookingController() *BookingController {
	return &BookingController{bookingService: services.NewBookingService()}
}

// JoinHike registers the calling user for a hike
func (c *BookingController) JoinHike(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	hikeID := ctx.Param("id")

	// Body is optional; status defaults to pending.
	var req dto.JoinHikeRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request body",
				"error":   err.Error(),
			})
			return
		}
	}

	booking, err := c.bookingService.Join(hikeID, principal.UserID, models.BookingStatus(req.Status))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   booking,
	})
}

// LeaveHike cancels the calling user's booking for a hike
func (c *BookingController) LeaveHike(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	hikeID := ctx.Param("id")

	booking, err := c.bookingService.Leave(hikeID, principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if booking == nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No booking found for this hike",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   booking,
	})
}

// ListMyBookings retrieves the calling user's bookings
func (c *BookingController) ListMyBookings(ctx *gin.Context) {
	principal, ok := requirePersisted(ctx)
	if !ok {
		return
	}

	bookings, err := c.bookingService.ListForUser(principal.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   bookings,
	})
}
