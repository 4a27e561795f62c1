package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormPageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) PageRepo {
	return &gormPageRepo{db}
}

// FindPublished returns published pages sorted by display order. Equal
// orders fall back to creation time, so ties keep insertion order.
func (r *gormPageRepo) FindPublished() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Where("published = ?", true).
		Order("display_order asc, created_at asc").
		Limit(MaxPageResults).
		Find(&pages).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "pages", err)
	}
	return pages, nil
}

// FindPublishedBySlug returns the published page with the given slug. An
// unpublished page with that slug is indistinguishable from no page at all.
func (r *gormPageRepo) FindPublishedBySlug(slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("slug = ? AND published = ?", slug, true).First(&page).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "page", err)
	}
	return &page, nil
}

// FindAll returns every page, drafts included, sorted by display order.
func (r *gormPageRepo) FindAll() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("display_order asc, created_at asc").Limit(MaxPageResults).Find(&pages).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "pages", err)
	}
	return pages, nil
}

func (r *gormPageRepo) FindByID(id uuid.UUID) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, "id = ?", id).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "page", err)
	}
	return &page, nil
}

func (r *gormPageRepo) Add(page *models.Page) error {
	if err := r.db.Create(page).Error; err != nil {
		return errs.NewDatabaseError("create", "page", err)
	}
	return nil
}

// Update writes the full page record. A slug collision with another page
// violates the unique index and surfaces as a conflict.
func (r *gormPageRepo) Update(page *models.Page) error {
	if err := r.db.Save(page).Error; err != nil {
		return errs.NewDatabaseError("update", "page", err)
	}
	return nil
}

// Delete removes the page and, with it, its embedded blocks.
func (r *gormPageRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.Page{}, "id = ?", id)
	if tx.Error != nil {
		return errs.NewDatabaseError("delete", "page", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("page")
	}
	return nil
}
