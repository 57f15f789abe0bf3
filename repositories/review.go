package repositories

import (
	"errors"

	"github.com/hikeup-backend/database"
	"github.com/hikeup-backend/models"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct{}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// FindByHikeAndUser retrieves the review for a (hike, user) pair.
// Returns (nil, nil) when none exists.
func (r *ReviewRepository) FindByHikeAndUser(hikeID, userID string) (*models.Review, error) {
	var review models.Review
	result := database.DB.Where("hike_id = ? AND user_id = ?", hikeID, userID).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &review, nil
}

// Create inserts a new review. The unique index on (hike_id, user_id)
// makes the first write win under concurrent duplicate attempts.
func (r *ReviewRepository) Create(review *models.Review) error {
	err := database.DB.Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReview
	}
	return err
}

// FindByHike retrieves all reviews for a hike, newest first
func (r *ReviewRepository) FindByHike(hikeID string) ([]models.Review, error) {
	var reviews []models.Review
	result := database.DB.Where("hike_id = ?", hikeID).Order("created_at desc").Find(&reviews)
	return reviews, result.Error
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(id string) error {
	return database.DB.Delete(&models.Review{}, "id = ?", id).Error
}
