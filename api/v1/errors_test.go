package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hikeup-backend/repositories"
	"github.com/hikeup-backend/services"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"hike not found", repositories.ErrHikeNotFound, http.StatusNotFound, "Hike not found"},
		{"own hike", repositories.ErrOwnHike, http.StatusBadRequest, "CANNOT_JOIN_OWN_HIKE"},
		{"hike full", repositories.ErrHikeFull, http.StatusBadRequest, "HIKE_FULL"},
		{"duplicate booking", repositories.ErrDuplicateBooking, http.StatusConflict, "ALREADY_BOOKED"},
		{"duplicate review", repositories.ErrDuplicateReview, http.StatusConflict, "ALREADY_REVIEWED"},
		{"review without booking", services.ErrReviewNotBooked, http.StatusForbidden, "NOT_BOOKED"},
		{"review too early", services.ErrReviewTooEarly, http.StatusBadRequest, "REVIEW_TOO_EARLY"},
		{"not hike owner", services.ErrNotHikeOwner, http.StatusForbidden, "permission"},
		{"unexpected errors are masked", errors.New("pq: connection reset"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRespondErrorMasksInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
