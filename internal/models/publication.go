package models

import "time"

// Publication represents a post authored by a user.
// CreatedAt is the creation date, UpdatedAt the last edition date.
type Publication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"edited_at"`

	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
