package database

import (
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormMediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &gormMediaRepo{db}
}

// FindAll returns media items, newest first.
func (r *gormMediaRepo) FindAll() ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.Order("created_at desc").Limit(MaxMediaResults).Find(&items).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "media items", err)
	}
	return items, nil
}

func (r *gormMediaRepo) Add(item *models.MediaItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return errs.NewDatabaseError("create", "media item", err)
	}
	return nil
}
