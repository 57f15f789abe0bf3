package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/repositories"
	"github.com/hikeup-backend/services"
)

// respondError maps business-rule violations to typed responses with
// stable machine-readable codes. Anything unrecognized is an
// infrastructure failure: it gets logged in full and masked behind a
// generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrHikeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Hike not found",
		})
	case errors.Is(err, repositories.ErrOwnHike):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    "CANNOT_JOIN_OWN_HIKE",
			"message": "You cannot join a hike you are guiding",
		})
	case errors.Is(err, repositories.ErrHikeFull):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    "HIKE_FULL",
			"message": "This hike has no spots left",
		})
	case errors.Is(err, repositories.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"code":    "ALREADY_BOOKED",
			"message": "You already have a booking for this hike",
		})
	case errors.Is(err, repositories.ErrDuplicateReview):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"code":    "ALREADY_REVIEWED",
			"message": "You already reviewed this hike",
		})
	case errors.Is(err, services.ErrReviewNotBooked):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"code":    "NOT_BOOKED",
			"message": "Only participants can review this hike",
		})
	case errors.Is(err, services.ErrReviewTooEarly):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"code":    "REVIEW_TOO_EARLY",
			"message": "This hike has not taken place yet",
		})
	case errors.Is(err, services.ErrNotHikeOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "You do not have permission to modify this hike",
		})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Something went wrong",
		})
	}
}
