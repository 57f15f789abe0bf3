package services

import (
	"errors"

	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
	"github.com/hikeup-backend/utils"
)

// ErrNotHikeOwner is returned when a guide operates on a hike owned by
// someone else.
var ErrNotHikeOwner = errors.New("not the owner of this hike")

// HikeStore is the persistence surface for hikes.
type HikeStore interface {
	FindByID(id string) (*models.Hike, error)
	Create(hike *models.Hike) error
	Update(hike *models.Hike) error
	Delete(id string) error
	CountBookings(id string) (int64, error)
	FindWithPagination(page, pageSize int, sortBy, sortOrder, guideID, search string) ([]models.Hike, int64, error)
}

// HikeService handles business logic for hikes
type HikeService struct {
	hikes HikeStore
}

// NewHikeService creates a new hike service instance
func NewHikeService() *HikeService {
	return &HikeService{hikes: repositories.NewHikeRepository()}
}

// newHikeServiceWith wires an explicit store. Used by tests.
func newHikeServiceWith(hikes HikeStore) *HikeService {
	return &HikeService{hikes: hikes}
}

// ListHikes retrieves hikes with pagination, filtering and sorting
func (s *HikeService) ListHikes(filter dto.HikeFilter) (dto.HikeListResponse, error) {
	var response dto.HikeListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "date"
	}

	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "asc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"date":        true,
		"created_at":  true,
		"title":       true,
		"distance_km": true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "date"
	}

	hikes, totalCount, err := s.hikes.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.GuideID,
		filter.Search,
	)
	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.HikeListResponse{
		Hikes:      hikes,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetHikeDetail retrieves a hike with its live booking count
func (s *HikeService) GetHikeDetail(id string) (dto.HikeDetailResponse, error) {
	hike, err := s.hikes.FindByID(id)
	if err != nil {
		return dto.HikeDetailResponse{}, err
	}

	count, err := s.hikes.CountBookings(id)
	if err != nil {
		return dto.HikeDetailResponse{}, err
	}

	response := dto.HikeDetailResponse{
		Hike:         *hike,
		BookingCount: count,
	}

	if hike.Capacity > 0 {
		spots := int64(hike.Capacity) - count
		if spots < 0 {
			spots = 0
		}
		response.SpotsLeft = &spots
	}

	return response, nil
}

// CreateHike publishes a new hike owned by the given guide
func (s *HikeService) CreateHike(req dto.CreateHikeRequest, guideID string) (*models.Hike, error) {
	difficulty := models.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = models.DifficultyModerate
	}

	hike := &models.Hike{
		Title:       req.Title,
		Slug:        utils.Slugify(req.Title) + "-" + utils.GenerateShortID(),
		Description: req.Description,
		Location:    req.Location,
		Difficulty:  difficulty,
		DistanceKm:  req.DistanceKm,
		Capacity:    req.Capacity,
		Date:        req.Date,
		GuideID:     guideID,
	}

	if err := s.hikes.Create(hike); err != nil {
		return nil, err
	}

	return hike, nil
}

// UpdateHike edits a hike. Guides can only edit their own hikes; admins
// can edit any.
func (s *HikeService) UpdateHike(id string, req dto.UpdateHikeRequest, userID string, isAdmin bool) (*models.Hike, error) {
	hike, err := s.hikes.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && hike.GuideID != userID {
		return nil, ErrNotHikeOwner
	}

	if req.Title != nil {
		hike.Title = *req.Title
	}
	if req.Description != nil {
		hike.Description = *req.Description
	}
	if req.Location != nil {
		hike.Location = *req.Location
	}
	if req.Difficulty != nil {
		hike.Difficulty = models.Difficulty(*req.Difficulty)
	}
	if req.DistanceKm != nil {
		hike.DistanceKm = *req.DistanceKm
	}
	if req.Capacity != nil {
		hike.Capacity = *req.Capacity
	}
	if req.Date != nil {
		hike.Date = req.Date
	}

	if err := s.hikes.Update(hike); err != nil {
		return nil, err
	}

	return hike, nil
}

// DeleteHike removes a hike and cascades its bookings and reviews.
// Guides can only delete their own hikes; admins can delete any.
func (s *HikeService) DeleteHike(id string, userID string, isAdmin bool) error {
	hike, err := s.hikes.FindByID(id)
	if err != nil {
		return err
	}

	if !isAdmin && hike.GuideID != userID {
		return ErrNotHikeOwner
	}

	return s.hikes.Delete(id)
}
