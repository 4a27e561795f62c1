package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/models"
)

// Fixed result caps for list operations. Results beyond the cap are
// silently truncated.
const (
	MaxPageResults     = 100
	MaxMenuItemResults = 50
	MaxContactResults  = 100
	MaxMediaResults    = 100
	MaxBlogPostResults = 100
)

// AccountRepo stores admin identities. Username uniqueness is enforced by
// the store itself, so concurrent registrations cannot both succeed.
type AccountRepo interface {
	Add(account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
}

// PageRepo stores slug-addressed publishable pages. Slug uniqueness is a
// store-level constraint; Add and Update surface a collision as a conflict.
type PageRepo interface {
	FindPublished() ([]models.Page, error)
	FindPublishedBySlug(slug string) (*models.Page, error)
	FindAll() ([]models.Page, error)
	FindByID(id uuid.UUID) (*models.Page, error)
	Add(page *models.Page) error
	Update(page *models.Page) error
	Delete(id uuid.UUID) error
}

type MenuItemRepo interface {
	FindAll() ([]models.MenuItem, error)
	Add(item *models.MenuItem) error
	Delete(id uuid.UUID) error
}

type ContactRepo interface {
	FindAll() ([]models.Contact, error)
	Add(contact *models.Contact) error
	MarkRead(id uuid.UUID) error
}

// SettingsRepo stores the settings singleton. Get on an absent row returns
// a not-found error; Upsert creates or replaces the row in a single call.
type SettingsRepo interface {
	Get() (*models.Settings, error)
	Upsert(settings *models.Settings) error
}

type HomeContentRepo interface {
	Get() (*models.HomeContent, error)
	Upsert(content *models.HomeContent) error
}

type MediaRepo interface {
	FindAll() ([]models.MediaItem, error)
	Add(item *models.MediaItem) error
}

type BlogPostRepo interface {
	FindPublished() ([]models.BlogPost, error)
	FindPublishedByID(id uuid.UUID) (*models.BlogPost, error)
	FindAll() ([]models.BlogPost, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(id uuid.UUID) error
}

type Database struct {
	accountRepo     AccountRepo
	pageRepo        PageRepo
	menuItemRepo    MenuItemRepo
	contactRepo     ContactRepo
	settingsRepo    SettingsRepo
	homeContentRepo HomeContentRepo
	mediaRepo       MediaRepo
	blogPostRepo    BlogPostRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		accountRepo:     NewAccountRepo(db),
		pageRepo:        NewPageRepo(db),
		menuItemRepo:    NewMenuItemRepo(db),
		contactRepo:     NewContactRepo(db),
		settingsRepo:    NewSettingsRepo(db),
		homeContentRepo: NewHomeContentRepo(db),
		mediaRepo:       NewMediaRepo(db),
		blogPostRepo:    NewBlogPostRepo(db),
	}
}

// NewWithRepos builds a Database from explicit repository implementations.
// Used by the in-memory store and by tests.
func NewWithRepos(
	accountRepo AccountRepo,
	pageRepo PageRepo,
	menuItemRepo MenuItemRepo,
	contactRepo ContactRepo,
	settingsRepo SettingsRepo,
	homeContentRepo HomeContentRepo,
	mediaRepo MediaRepo,
	blogPostRepo BlogPostRepo,
) Database {
	return Database{
		accountRepo:     accountRepo,
		pageRepo:        pageRepo,
		menuItemRepo:    menuItemRepo,
		contactRepo:     contactRepo,
		settingsRepo:    settingsRepo,
		homeContentRepo: homeContentRepo,
		mediaRepo:       mediaRepo,
		blogPostRepo:    blogPostRepo,
	}
}

// Accessor methods for each repository

func (d Database) AccountRepo() AccountRepo {
	return d.accountRepo
}

func (d Database) PageRepo() PageRepo {
	return d.pageRepo
}

func (d Database) MenuItemRepo() MenuItemRepo {
	return d.menuItemRepo
}

func (d Database) ContactRepo() ContactRepo {
	return d.contactRepo
}

func (d Database) SettingsRepo() SettingsRepo {
	return d.settingsRepo
}

func (d Database) HomeContentRepo() HomeContentRepo {
	return d.homeContentRepo
}

func (d Database) MediaRepo() MediaRepo {
	return d.mediaRepo
}

func (d Database) BlogPostRepo() BlogPostRepo {
	return d.blogPostRepo
}

// Migrate creates or updates the schema for every stored entity, including
// the unique indexes on account usernames and page slugs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.Page{},
		&models.MenuItem{},
		&models.Contact{},
		&models.Settings{},
		&models.HomeContent{},
		&models.MediaItem{},
		&models.BlogPost{},
	)
}
