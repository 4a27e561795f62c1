package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem records metadata for an uploaded file. Append-only: items are
// created and listed, never updated.
type MediaItem struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Filename  string    `json:"filename" db:"filename" gorm:"type:text;not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Type      string    `json:"type" db:"type" gorm:"type:text;not null"`
	Size      int64     `json:"size" db:"size" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null"`
}
