package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a publishable article. Drafts are hidden from the public
// read paths, same as unpublished pages.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null;default:''"`
	ImageURL  string    `json:"image_url" db:"image_url" gorm:"type:text;not null;default:''"`
	Tags      []string  `json:"tags" db:"tags" gorm:"serializer:json;type:jsonb;not null"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null"`
}
