package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList custom type for JSON storage
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// Review represents feedback left by a participant after a hike.
// At most one review exists per (hike, user) pair; the first write wins.
type Review struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	HikeID    string     `json:"hikeId" gorm:"type:uuid;not null;uniqueIndex:idx_review_hike_user"`
	GuideID   string     `json:"guideId" gorm:"type:uuid;not null;index"`
	UserID    string     `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_review_hike_user"`
	Rating    int        `json:"rating" gorm:"not null"`
	Comment   string     `json:"comment" gorm:"default:null"`
	Tags      StringList `json:"tags" gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
