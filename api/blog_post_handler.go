package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostCreate is the payload for creating a post.
type BlogPostCreate struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	ImageURL  string   `json:"image_url"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// BlogPostUpdate carries only the fields the caller wants changed.
type BlogPostUpdate struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	ImageURL  *string   `json:"image_url"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

// getPublishedBlogPosts returns published posts for the public view,
// newest first.
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if posts == nil {
			posts = []models.BlogPost{}
		}
		h.responder.WriteJSON(w, posts)
	}
}

// getPublishedBlogPost returns a single published post. Drafts are hidden.
func (h blogPostHandler) getPublishedBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.FindPublishedByID(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getAllBlogPosts returns every post, drafts included, for the admin view.
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if posts == nil {
			posts = []models.BlogPost{}
		}
		h.responder.WriteJSON(w, posts)
	}
}

func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogPostCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}

		now := time.Now().UTC()
		post := models.BlogPost{
			ID:        uuid.New(),
			Title:     req.Title,
			Content:   req.Content,
			Excerpt:   req.Excerpt,
			ImageURL:  req.ImageURL,
			Tags:      tags,
			Published: req.Published,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := h.blogPostRepo.Add(&post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPostRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req BlogPostUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title != nil {
			post.Title = *req.Title
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.Excerpt != nil {
			post.Excerpt = *req.Excerpt
		}
		if req.ImageURL != nil {
			post.ImageURL = *req.ImageURL
		}
		if req.Tags != nil {
			tags := *req.Tags
			if tags == nil {
				tags = []string{}
			}
			post.Tags = tags
		}
		if req.Published != nil {
			post.Published = *req.Published
		}
		post.UpdatedAt = time.Now().UTC()

		if err := h.blogPostRepo.Update(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogPostRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
