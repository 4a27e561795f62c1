package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// AccountRepo is an in-memory implementation of database.AccountRepo
type AccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]models.Account
}

func NewAccountRepo() database.AccountRepo {
	return &AccountRepo{accounts: make(map[uuid.UUID]models.Account)}
}

func (r *AccountRepo) Add(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Username == account.Username {
			return errs.NewAlreadyExists("account")
		}
	}
	r.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepo) FindByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Username == username {
			found := account
			return &found, nil
		}
	}
	return nil, errs.NewNotFound("account")
}
