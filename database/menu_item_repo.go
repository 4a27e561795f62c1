package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormMenuItemRepo struct {
	db *gorm.DB
}

func NewMenuItemRepo(db *gorm.DB) MenuItemRepo {
	return &gormMenuItemRepo{db}
}

// FindAll returns menu items sorted by display order.
func (r *gormMenuItemRepo) FindAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("display_order asc").Limit(MaxMenuItemResults).Find(&items).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "menu items", err)
	}
	return items, nil
}

func (r *gormMenuItemRepo) Add(item *models.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return errs.NewDatabaseError("create", "menu item", err)
	}
	return nil
}

func (r *gormMenuItemRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.MenuItem{}, "id = ?", id)
	if tx.Error != nil {
		return errs.NewDatabaseError("delete", "menu item", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("menu item")
	}
	return nil
}
