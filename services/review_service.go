package services

import (
	"errors"
	"time"

	"github.com/hikeup-backend/config"
	"github.com/hikeup-backend/dto"
	"github.com/hikeup-backend/models"
	"github.com/hikeup-backend/repositories"
)

// ErrReviewNotBooked is returned when a user without a booking for the
// hike attempts to review it.
var ErrReviewNotBooked = errors.New("no booking for this hike")

// ErrReviewTooEarly is returned when the hike has not taken place yet in
// any of the reference calendar zones.
var ErrReviewTooEarly = errors.New("hike has not taken place yet")

// ReviewStore is the persistence surface for reviews.
type ReviewStore interface {
	FindByHikeAndUser(hikeID, userID string) (*models.Review, error)
	Create(review *models.Review) error
	FindByHike(hikeID string) ([]models.Review, error)
	Delete(id string) error
}

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviews  ReviewStore
	bookings BookingStore
	hikes    HikeStore

	reference *time.Location
	now       func() time.Time
}

// NewReviewService creates a new review service instance
func NewReviewService(cfg *config.Config) *ReviewService {
	return &ReviewService{
		reviews:   repositories.NewReviewRepository(),
		bookings:  repositories.NewBookingRepository(),
		hikes:     repositories.NewHikeRepository(),
		reference: time.FixedZone("review-reference", cfg.ReviewZoneOffsetHours*3600),
		now:       time.Now,
	}
}

// newReviewServiceWith wires explicit collaborators. Used by tests.
func newReviewServiceWith(reviews ReviewStore, bookings BookingStore, hikes HikeStore,
	reference *time.Location, now func() time.Time) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, hikes: hikes,
		reference: reference, now: now}
}

// CanReview reports whether a hike dated hikeDate is reviewable now.
func (s *ReviewService) CanReview(hikeDate *time.Time) bool {
	return canReviewOn(hikeDate, s.now(), s.reference)
}

// canReviewOn compares the hike's calendar day against "today" both in UTC
// and in a fixed reference zone east of UTC; either zone saying the day
// has arrived makes the hike reviewable. The rule is deliberately
// timezone-tolerant rather than timezone-exact: a user whose local day is
// ahead of UTC can review a hike that has already started locally, at the
// cost of admitting reviews up to one calendar day early for users in
// zones behind the reference. A hike with no date is always reviewable.
func canReviewOn(hikeDate *time.Time, now time.Time, reference *time.Location) bool {
	if hikeDate == nil {
		return true
	}
	return dayReached(*hikeDate, now, time.UTC) || dayReached(*hikeDate, now, reference)
}

// dayReached reports whether t's calendar day in loc is today or earlier.
func dayReached(t, now time.Time, loc *time.Location) bool {
	ty, tm, td := t.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return !day.After(today)
}

// Create stores a review for a hike. The requester must hold a booking for
// the hike, the hike's date must satisfy the eligibility rule, and only
// the first review per (hike, user) pair succeeds.
func (s *ReviewService) Create(hikeID, userID string, req dto.CreateReviewRequest) (*models.Review, error) {
	hike, err := s.hikes.FindByID(hikeID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByHikeAndUser(hikeID, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrReviewNotBooked
	}

	if !s.CanReview(hike.Date) {
		return nil, ErrReviewTooEarly
	}

	existing, err := s.reviews.FindByHikeAndUser(hikeID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repositories.ErrDuplicateReview
	}

	tags := models.StringList{}
	if req.Tags != nil {
		tags = models.StringList(req.Tags)
	}

	review := &models.Review{
		HikeID:  hikeID,
		GuideID: hike.GuideID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Tags:    tags,
	}

	// The unique index settles concurrent duplicates: the second writer
	// gets ErrDuplicateReview from the store.
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListForHike retrieves all reviews for a hike
func (s *ReviewService) ListForHike(hikeID string) ([]models.Review, error) {
	if _, err := s.hikes.FindByID(hikeID); err != nil {
		return nil, err
	}
	return s.reviews.FindByHike(hikeID)
}

// Delete removes a review. Used by admin moderation.
func (s *ReviewService) Delete(id string) error {
	return s.reviews.Delete(id)
}
