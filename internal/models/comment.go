package models

import "time"

// Comment is attached to a publication and immutable after creation.
// It is removed only when its publication is deleted.
type Comment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AuthorID      uint      `gorm:"not null;index" json:"author_id"`
	PublicationID uint      `gorm:"not null;index" json:"publication_id"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	CreatedAt     time.Time `json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
