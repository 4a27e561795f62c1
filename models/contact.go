package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a contact-form submission. Read defaults to false and is only
// flipped by an explicit mark-read action.
type Contact struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null"`
	Read      bool      `json:"read" db:"read" gorm:"not null;default:false"`
}
