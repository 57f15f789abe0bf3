package repositories

import (
	"errors"

	"github.com/hikeup-backend/database"
	"github.com/hikeup-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct{}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// CreateWithCapacityCheck inserts a booking while enforcing the capacity
// and ownership invariants. The hike row is locked for the duration of the
// transaction so the count and the insert act as one atomic unit: two
// concurrent joins against the last open slot cannot both observe room
// available. The composite unique index on (hike_id, user_id) backs the
// duplicate-booking race independently of the lock.
func (r *BookingRepository) CreateWithCapacityCheck(hikeID, userID string, status models.BookingStatus) (*models.Booking, error) {
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		HikeID: hikeID,
		UserID: userID,
		Status: status,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var hike models.Hike
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&hike, "id = ?", hikeID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrHikeNotFound
			}
			return result.Error
		}

		if hike.GuideID == userID {
			return ErrOwnHike
		}

		var existing int64
		if err := tx.Model(&models.Booking{}).
			Where("hike_id = ? AND user_id = ?", hikeID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateBooking
		}

		// Capacity 0 means unlimited. The count is recomputed live, never
		// cached.
		if hike.Capacity > 0 {
			var count int64
			if err := tx.Model(&models.Booking{}).
				Where("hike_id = ?", hikeID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(hike.Capacity) {
				return ErrHikeFull
			}
		}

		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateBooking
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// FindByHikeAndUser retrieves the booking for a (hike, user) pair.
// Returns (nil, nil) when none exists.
func (r *BookingRepository) FindByHikeAndUser(hikeID, userID string) (*models.Booking, error) {
	var booking models.Booking
	result := database.DB.Where("hike_id = ? AND user_id = ?", hikeID, userID).First(&booking)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &booking, nil
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(id string) error {
	return database.DB.Delete(&models.Booking{}, "id = ?", id).Error
}

// FindByUser retrieves all bookings held by a user
func (r *BookingRepository) FindByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	result := database.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings)
	return bookings, result.Error
}
