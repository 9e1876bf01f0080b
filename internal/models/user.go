// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in Plaza.
// The password hash is never serialized.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Publications []Publication `gorm:"foreignKey:AuthorID" json:"publications,omitempty"`
}
