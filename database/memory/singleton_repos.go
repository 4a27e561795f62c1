package memory

import (
	"sync"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// SettingsRepo is an in-memory implementation of database.SettingsRepo
type SettingsRepo struct {
	mu       sync.RWMutex
	settings *models.Settings
}

func NewSettingsRepo() database.SettingsRepo {
	return &SettingsRepo{}
}

func (r *SettingsRepo) Get() (*models.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, errs.NewNotFound("settings")
	}
	found := *r.settings
	return &found, nil
}

func (r *SettingsRepo) Upsert(settings *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.ID = models.SettingsID
	stored := *settings
	r.settings = &stored
	return nil
}

// HomeContentRepo is an in-memory implementation of database.HomeContentRepo
type HomeContentRepo struct {
	mu      sync.RWMutex
	content *models.HomeContent
}

func NewHomeContentRepo() database.HomeContentRepo {
	return &HomeContentRepo{}
}

func (r *HomeContentRepo) Get() (*models.HomeContent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.content == nil {
		return nil, errs.NewNotFound("home content")
	}
	found := *r.content
	return &found, nil
}

func (r *HomeContentRepo) Upsert(content *models.HomeContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content.ID = models.HomeContentID
	stored := *content
	r.content = &stored
	return nil
}
