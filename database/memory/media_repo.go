package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/models"
)

// MediaRepo is an in-memory implementation of database.MediaRepo
type MediaRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.MediaItem
}

func NewMediaRepo() database.MediaRepo {
	return &MediaRepo{items: make(map[uuid.UUID]models.MediaItem)}
}

func (r *MediaRepo) FindAll() ([]models.MediaItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MediaItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > database.MaxMediaResults {
		items = items[:database.MaxMediaResults]
	}
	return items, nil
}

func (r *MediaRepo) Add(item *models.MediaItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = *item
	return nil
}
