package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is one entry of the site navigation menu.
type MenuItem struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Label     string    `json:"label" db:"label" gorm:"type:text;not null"`
	URL       string    `json:"url" db:"url" gorm:"type:text;not null"`
	Order     int       `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null"`
}
