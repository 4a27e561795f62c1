package models

import "time"

// HomeContentID is the well-known key of the home-page content singleton row.
const HomeContentID = "home_page_content"

// HomeContent is the second singleton record: hero copy plus free-form
// sections rendered on the landing page. Same absence-means-defaults
// contract as Settings.
type HomeContent struct {
	ID           string                   `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	HeroTitle    string                   `json:"hero_title" db:"hero_title" gorm:"type:text;not null"`
	HeroSubtitle string                   `json:"hero_subtitle" db:"hero_subtitle" gorm:"type:text;not null;default:''"`
	HeroImage    string                   `json:"hero_image" db:"hero_image" gorm:"type:text;not null;default:''"`
	Sections     []map[string]interface{} `json:"sections" db:"sections" gorm:"serializer:json;type:jsonb;not null"`
	UpdatedAt    time.Time                `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null"`
}

func DefaultHomeContent() HomeContent {
	return HomeContent{
		ID:        HomeContentID,
		HeroTitle: "Welcome",
		Sections:  []map[string]interface{}{},
		UpdatedAt: time.Now().UTC(),
	}
}
