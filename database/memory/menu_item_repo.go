package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// MenuItemRepo is an in-memory implementation of database.MenuItemRepo
type MenuItemRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.MenuItem
}

func NewMenuItemRepo() database.MenuItemRepo {
	return &MenuItemRepo{items: make(map[uuid.UUID]models.MenuItem)}
}

func (r *MenuItemRepo) FindAll() ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	if len(items) > database.MaxMenuItemResults {
		items = items[:database.MaxMenuItemResults]
	}
	return items, nil
}

func (r *MenuItemRepo) Add(item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = *item
	return nil
}

func (r *MenuItemRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return errs.NewNotFound("menu item")
	}
	delete(r.items, id)
	return nil
}
