// Package repositories defines sentinel error values reused across the
// persistence layer. Higher layers translate these into HTTP responses
// with stable machine-readable codes: for example ErrHikeFull becomes a
// 400 with code HIKE_FULL, while ErrDuplicateBooking and
// ErrDuplicateReview become 409 responses.
package repositories

import "errors"

// ErrHikeNotFound is returned when the referenced hike does not exist.
var ErrHikeNotFound = errors.New("hike not found")

// ErrHikeFull is returned when a join would exceed the hike's capacity.
var ErrHikeFull = errors.New("hike is full")

// ErrOwnHike is returned when a guide attempts to book a hike they own.
var ErrOwnHike = errors.New("cannot join own hike")

// ErrDuplicateBooking is returned when a booking already exists for the
// same (hike, user) pair. Under concurrent joins the losing writer gets
// this from the composite unique index.
var ErrDuplicateBooking = errors.New("booking already exists")

// ErrDuplicateReview is returned when a review already exists for the
// same (hike, user) pair. The first write wins.
var ErrDuplicateReview = errors.New("review already exists")
