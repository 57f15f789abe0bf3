package models

import (
	"time"
)

// BookingStatus represents the lifecycle of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking represents one user's registration for one hike.
// The composite unique index backs the one-active-booking-per-pair
// invariant under concurrent joins.
type Booking struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	HikeID    string        `json:"hikeId" gorm:"type:uuid;not null;uniqueIndex:idx_booking_hike_user"`
	UserID    string        `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_booking_hike_user"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
