package models

import "time"

// SettingsID is the well-known key of the settings singleton row.
const SettingsID = "site_settings"

// Settings is a singleton record. At most one row ever exists; reading an
// absent row yields DefaultSettings rather than an error.
type Settings struct {
	ID              string            `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Theme           string            `json:"theme" db:"theme" gorm:"type:text;not null"`
	SiteTitle       string            `json:"site_title" db:"site_title" gorm:"type:text;not null"`
	SiteDescription string            `json:"site_description" db:"site_description" gorm:"type:text;not null;default:''"`
	AdminEmail      string            `json:"admin_email,omitempty" db:"admin_email" gorm:"type:text;not null;default:''"`
	SocialLinks     map[string]string `json:"social_links" db:"social_links" gorm:"serializer:json;type:jsonb;not null"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null"`
}

// DefaultSettings is what a read returns before the singleton was ever
// written. Never persisted just by reading.
func DefaultSettings() Settings {
	return Settings{
		ID:          SettingsID,
		Theme:       "light",
		SiteTitle:   "Lunaria",
		SocialLinks: map[string]string{},
		UpdatedAt:   time.Now().UTC(),
	}
}
