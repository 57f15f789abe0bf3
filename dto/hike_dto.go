package dto

import (
	"time"

	"github.com/hikeup-backend/models"
)

// CreateHikeRequest represents the payload for publishing a hike
type CreateHikeRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Difficulty  string     `json:"difficulty" binding:"omitempty,oneof=easy moderate hard"`
	DistanceKm  float64    `json:"distanceKm" binding:"omitempty,gte=0"`
	Capacity    int        `json:"capacity" binding:"omitempty,gte=0"`
	Date        *time.Time `json:"date"`
}

// UpdateHikeRequest represents the payload for editing a hike.
// Pointer fields distinguish "not provided" from zero values.
type UpdateHikeRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Difficulty  *string    `json:"difficulty" binding:"omitempty,oneof=easy moderate hard"`
	DistanceKm  *float64   `json:"distanceKm" binding:"omitempty,gte=0"`
	Capacity    *int       `json:"capacity" binding:"omitempty,gte=0"`
	Date        *time.Time `json:"date"`
}

// HikeFilter carries pagination, search and sorting options for listings
type HikeFilter struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
	GuideID   string
}

// HikeListResponse wraps a paginated hike listing
type HikeListResponse struct {
	Hikes      []models.Hike `json:"hikes"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// HikeDetailResponse is a hike plus its live booking count
type HikeDetailResponse struct {
	Hike         models.Hike `json:"hike"`
	BookingCount int64       `json:"bookingCount"`
	SpotsLeft    *int64      `json:"spotsLeft,omitempty"` // nil when capacity is unlimited
}
