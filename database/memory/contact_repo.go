package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// ContactRepo is an in-memory implementation of database.ContactRepo
type ContactRepo struct {
	mu       sync.RWMutex
	contacts map[uuid.UUID]models.Contact
}

func NewContactRepo() database.ContactRepo {
	return &ContactRepo{contacts: make(map[uuid.UUID]models.Contact)}
}

func (r *ContactRepo) FindAll() ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]models.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		contacts = append(contacts, contact)
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	if len(contacts) > database.MaxContactResults {
		contacts = contacts[:database.MaxContactResults]
	}
	return contacts, nil
}

func (r *ContactRepo) Add(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[contact.ID] = *contact
	return nil
}

func (r *ContactRepo) MarkRead(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, exists := r.contacts[id]
	if !exists {
		return errs.NewNotFound("contact")
	}
	contact.Read = true
	r.contacts[id] = contact
	return nil
}
