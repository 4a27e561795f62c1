package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// PageRepo is an in-memory implementation of database.PageRepo
type PageRepo struct {
	mu      sync.RWMutex
	pages   map[uuid.UUID]models.Page
	seq     map[uuid.UUID]uint64
	nextSeq uint64
}

func NewPageRepo() database.PageRepo {
	return &PageRepo{
		pages: make(map[uuid.UUID]models.Page),
		seq:   make(map[uuid.UUID]uint64),
	}
}

func (r *PageRepo) FindPublished() ([]models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pages []models.Page
	for _, page := range r.pages {
		if page.Published {
			pages = append(pages, page)
		}
	}
	r.sortByOrder(pages)
	return capPages(pages), nil
}

func (r *PageRepo) FindPublishedBySlug(slug string) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, page := range r.pages {
		if page.Slug == slug && page.Published {
			found := page
			return &found, nil
		}
	}
	return nil, errs.NewNotFound("page")
}

func (r *PageRepo) FindAll() ([]models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]models.Page, 0, len(r.pages))
	for _, page := range r.pages {
		pages = append(pages, page)
	}
	r.sortByOrder(pages)
	return capPages(pages), nil
}

func (r *PageRepo) FindByID(id uuid.UUID) (*models.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, exists := r.pages[id]
	if !exists {
		return nil, errs.NewNotFound("page")
	}
	return &page, nil
}

func (r *PageRepo) Add(page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pages {
		if existing.Slug == page.Slug {
			return errs.NewAlreadyExists("page")
		}
	}
	r.pages[page.ID] = *page
	r.seq[page.ID] = r.nextSeq
	r.nextSeq++
	return nil
}

func (r *PageRepo) Update(page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[page.ID]; !exists {
		return errs.NewNotFound("page")
	}
	for _, existing := range r.pages {
		if existing.Slug == page.Slug && existing.ID != page.ID {
			return errs.NewAlreadyExists("page")
		}
	}
	// Updates keep the original insertion sequence
	r.pages[page.ID] = *page
	return nil
}

func (r *PageRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[id]; !exists {
		return errs.NewNotFound("page")
	}
	delete(r.pages, id)
	delete(r.seq, id)
	return nil
}

// sortByOrder sorts by display order; equal orders keep insertion order.
// Caller holds at least the read lock.
func (r *PageRepo) sortByOrder(pages []models.Page) {
	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return r.seq[pages[i].ID] < r.seq[pages[j].ID]
	})
}

func capPages(pages []models.Page) []models.Page {
	if len(pages) > database.MaxPageResults {
		return pages[:database.MaxPageResults]
	}
	return pages
}
