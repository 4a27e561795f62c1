package database

import (
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormAccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &gormAccountRepo{db}
}

// Add inserts a new account. A duplicate username violates the unique
// index and surfaces as a conflict.
func (r *gormAccountRepo) Add(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return errs.NewDatabaseError("create", "account", err)
	}
	return nil
}

// FindByUsername returns the account with the given username.
func (r *gormAccountRepo) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "account", err)
	}
	return &account, nil
}
