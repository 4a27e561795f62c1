package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormHomeContentRepo struct {
	db *gorm.DB
}

func NewHomeContentRepo(db *gorm.DB) HomeContentRepo {
	return &gormHomeContentRepo{db}
}

func (r *gormHomeContentRepo) Get() (*models.HomeContent, error) {
	var content models.HomeContent
	if err := r.db.First(&content, "id = ?", models.HomeContentID).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "home content", err)
	}
	return &content, nil
}

func (r *gormHomeContentRepo) Upsert(content *models.HomeContent) error {
	content.ID = models.HomeContentID
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(content).Error
	if err != nil {
		return errs.NewDatabaseError("upsert", "home content", err)
	}
	return nil
}
