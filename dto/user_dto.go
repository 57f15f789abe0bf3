package dto

import "github.com/hikeup-backend/models"

// UpdateProfileRequest represents a profile edit
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserFilter carries pagination options for the admin user listing
type UserFilter struct {
	Page     int
	PageSize int
	Search   string
}

// UserListResponse wraps a paginated user listing
type UserListResponse struct {
	Users      []models.User `json:"users"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
