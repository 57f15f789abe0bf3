package repositories

import (
	"errors"

	"github.com/hikeup-backend/database"
	"github.com/hikeup-backend/models"
	"gorm.io/gorm"
)

// HikeRepository handles database operations for hikes
type HikeRepository struct{}

// NewHikeRepository creates a new hike repository instance
func NewHikeRepository() *HikeRepository {
	return &HikeRepository{}
}

// FindByID retrieves a hike by its ID
func (r *HikeRepository) FindByID(id string) (*models.Hike, error) {
	var hike models.Hike
	result := database.DB.First(&hike, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHikeNotFound
		}
		return nil, result.Error
	}
	return &hike, nil
}

// Create inserts a new hike into the database
func (r *HikeRepository) Create(hike *models.Hike) error {
	return database.DB.Create(hike).Error
}

// Update modifies an existing hike
func (r *HikeRepository) Update(hike *models.Hike) error {
	return database.DB.Save(hike).Error
}

// Delete removes a hike and its bookings and reviews in one transaction
func (r *HikeRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hike_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hike_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Hike{}, "id = ?", id).Error
	})
}

// CountBookings returns the live booking count for a hike
func (r *HikeRepository) CountBookings(id string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Booking{}).Where("hike_id = ?", id).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves hikes with pagination, filtering and sorting
func (r *HikeRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	guideID string,
	search string) ([]models.Hike, int64, error) {

	var hikes []models.Hike
	var totalCount int64

	db := database.DB.Model(&models.Hike{})

	// Filter by guide if requested
	if guideID != "" {
		db = db.Where("guide_id = ?", guideID)
	}

	// Search functionality
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title ILIKE ? OR description ILIKE ? OR location ILIKE ?)",
			searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&hikes).Error; err != nil {
		return nil, 0, err
	}

	return hikes, totalCount, nil
}
