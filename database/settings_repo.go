package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormSettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &gormSettingsRepo{db}
}

// Get returns the settings singleton. Absence is a not-found error; the
// caller substitutes defaults and persists nothing.
func (r *gormSettingsRepo) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "settings", err)
	}
	return &settings, nil
}

// Upsert writes the merged singleton in a single store call, creating the
// row on first write.
func (r *gormSettingsRepo) Upsert(settings *models.Settings) error {
	settings.ID = models.SettingsID
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
	if err != nil {
		return errs.NewDatabaseError("upsert", "settings", err)
	}
	return nil
}
