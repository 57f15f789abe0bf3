package models

import (
	"time"
)

// Difficulty represents how demanding a hike is
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Hike represents an excursion published by a guide.
// Capacity 0 means unlimited participants.
type Hike struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex"`
	Description string     `json:"description" gorm:"default:null"`
	Location    string     `json:"location" gorm:"default:null"`
	Difficulty  Difficulty `json:"difficulty" gorm:"type:varchar(10);default:'moderate'"`
	DistanceKm  float64    `json:"distanceKm" gorm:"default:0"`
	Capacity    int        `json:"capacity" gorm:"default:0"`
	Date        *time.Time `json:"date" gorm:"default:null"`
	GuideID     string     `json:"guideId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Guide    User      `json:"guide,omitempty" gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:HikeID;constraint:OnDelete:CASCADE"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:HikeID;constraint:OnDelete:CASCADE"`
}
