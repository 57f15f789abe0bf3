package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleHiker   Role = "hiker"
	RoleGuide   Role = "guide"
	RoleAdmin   Role = "admin"
)

// UserStatus represents account lifecycle state
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusDeleted UserStatus = "DELETED"
)

// User represents a persisted account. Accounts are provisioned lazily on
// the first successful credential verification. The Role column is an
// advisory cache: the admin decision is always recomputed from the
// allowlist at request time.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExternalID *string    `json:"externalId" gorm:"uniqueIndex;default:null"`
	Email      string     `json:"email" gorm:"uniqueIndex;not null"`
	Name       string     `json:"name" gorm:"default:null"`
	Role       Role       `json:"role" gorm:"type:varchar(10);default:'hiker'"`
	Status     UserStatus `json:"status" gorm:"type:varchar(10);default:'ACTIVE'"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.Status == UserStatusDeleted
}
