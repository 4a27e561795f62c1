package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockType tags a content block. The store accepts unknown tags so new
// block kinds can be introduced without a migration.
type BlockType string

const (
	BlockText    BlockType = "text"
	BlockHeading BlockType = "heading"
	BlockImage   BlockType = "image"
	BlockQuote   BlockType = "quote"
	BlockVideo   BlockType = "video"
	BlockHTML    BlockType = "html"
)

// Block is one ordered, typed content unit of a Page. Blocks are owned by
// their page and have no independent lifecycle; they are stored embedded
// in the page row.
type Block struct {
	ID      uuid.UUID              `json:"id"`
	Type    BlockType              `json:"type"`
	Content map[string]interface{} `json:"content"`
	Order   int                    `json:"order"`
}

// Page is a slug-addressed, publishable content page composed of ordered
// blocks. Unpublished pages are invisible to the public read paths.
type Page struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Blocks    []Block   `json:"blocks" db:"blocks" gorm:"serializer:json;type:jsonb;not null"`
	Published bool      `json:"published" db:"published" gorm:"not null;default:false"`
	Order     int       `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null"`
}
