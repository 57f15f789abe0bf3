package services

import (
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
)

// BookingStore is the persistence surface the booking engine needs.
// CreateWithCapacityCheck must enforce the capacity, ownership and
// uniqueness invariants atomically.
type BookingStore interface {
	CreateWithCapacityCheck(hikeID, userID string, status models.BookingStatus) (*models.Booking, error)
	FindByHikeAndUser(hikeID, userID string) (*models.Booking, error)
	Delete(id string) error
	FindByUser(userID string) ([]models.Booking, error)
}

// BookingService handles business logic for joining and leaving hikes
type BookingService struct {
	bookings BookingStore
}

// NewBookingService creates a new booking service instance
func NewBookingService() *BookingService {
	return &BookingService{bookings: repositories.NewBookingRepository()}
}

// newBookingServiceWith wires an explicit store. Used by tests.
func newBookingServiceWith(bookings BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// Join registers a user for a hike. Fails with repositories.ErrHikeNotFound,
// ErrOwnHike, ErrHikeFull or ErrDuplicateBooking when the corresponding
// invariant is violated.
func (s *BookingService) Join(hikeID, userID string, status models.BookingStatus) (*models.Booking, error) {
	return s.bookings.CreateWithCapacityCheck(hikeID, userID, status)
}

// Leave cancels a user's booking for a hike. Returns (nil, nil) when no
// booking exists; the caller maps that to a not-found response. On success
// the deleted booking's prior state is returned.
func (s *BookingService) Leave(hikeID, userID string) (*models.Booking, error) {
	booking, err := s.bookings.FindByHikeAndUser(hikeID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}
	if err := s.bookings.Delete(booking.ID); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListForUser retrieves all bookings held by a user
func (s *BookingService) ListForUser(userID string) ([]models.Booking, error) {
	return s.bookings.FindByUser(userID)
}
