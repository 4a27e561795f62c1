package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &gormContactRepo{db}
}

// FindAll returns contact submissions, newest first.
func (r *gormContactRepo) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at desc").Limit(MaxContactResults).Find(&contacts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contacts", err)
	}
	return contacts, nil
}

func (r *gormContactRepo) Add(contact *models.Contact) error {
	if err := r.db.Create(contact).Error; err != nil {
		return errs.NewDatabaseError("create", "contact", err)
	}
	return nil
}

// MarkRead flips the read flag. Marking an absent contact is a not-found
// error, matching the sibling delete and update operations.
func (r *gormContactRepo) MarkRead(id uuid.UUID) error {
	tx := r.db.Model(&models.Contact{}).Where("id = ?", id).Update("read", true)
	if tx.Error != nil {
		return errs.NewDatabaseError("update", "contact", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("contact")
	}
	return nil
}
