package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

// BlogPostRepo is an in-memory implementation of database.BlogPostRepo
type BlogPostRepo struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]models.BlogPost
}

func NewBlogPostRepo() database.BlogPostRepo {
	return &BlogPostRepo{posts: make(map[uuid.UUID]models.BlogPost)}
}

func (r *BlogPostRepo) FindPublished() ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []models.BlogPost
	for _, post := range r.posts {
		if post.Published {
			posts = append(posts, post)
		}
	}
	return sortAndCap(posts), nil
}

func (r *BlogPostRepo) FindPublishedByID(id uuid.UUID) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists || !post.Published {
		return nil, errs.NewNotFound("blog post")
	}
	return &post, nil
}

func (r *BlogPostRepo) FindAll() ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return sortAndCap(posts), nil
}

func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, exists := r.posts[id]
	if !exists {
		return nil, errs.NewNotFound("blog post")
	}
	return &post, nil
}

func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[post.ID] = *post
	return nil
}

func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; !exists {
		return errs.NewNotFound("blog post")
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[id]; !exists {
		return errs.NewNotFound("blog post")
	}
	delete(r.posts, id)
	return nil
}

func sortAndCap(posts []models.BlogPost) []models.BlogPost {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > database.MaxBlogPostResults {
		return posts[:database.MaxBlogPostResults]
	}
	return posts
}
