package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type gormBlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) BlogPostRepo {
	return &gormBlogPostRepo{db}
}

// FindPublished returns published posts, newest first.
func (r *gormBlogPostRepo) FindPublished() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("published = ?", true).
		Order("created_at desc").
		Limit(MaxBlogPostResults).
		Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog posts", err)
	}
	return posts, nil
}

// FindPublishedByID returns a published post. A draft with that id is
// indistinguishable from no post at all.
func (r *gormBlogPostRepo) FindPublishedByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("id = ? AND published = ?", id, true).First(&post).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

func (r *gormBlogPostRepo) FindAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at desc").Limit(MaxBlogPostResults).Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog posts", err)
	}
	return posts, nil
}

func (r *gormBlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

func (r *gormBlogPostRepo) Add(post *models.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		return errs.NewDatabaseError("create", "blog post", err)
	}
	return nil
}

func (r *gormBlogPostRepo) Update(post *models.BlogPost) error {
	if err := r.db.Save(post).Error; err != nil {
		return errs.NewDatabaseError("update", "blog post", err)
	}
	return nil
}

func (r *gormBlogPostRepo) Delete(id uuid.UUID) error {
	tx := r.db.Delete(&models.BlogPost{}, "id = ?", id)
	if tx.Error != nil {
		return errs.NewDatabaseError("delete", "blog post", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return errs.NewNotFound("blog post")
	}
	return nil
}
