package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	pageRepo  database.PageRepo
}

func newPageHandler(pageRepo database.PageRepo) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pageRepo:  pageRepo,
	}
}

// PageCreate is the payload for creating a page.
type PageCreate struct {
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Blocks    []models.Block `json:"blocks"`
	Published bool           `json:"published"`
	Order     int            `json:"order"`
}

// PageUpdate carries only the fields the caller wants changed. Absent
// fields are left untouched, not reset.
type PageUpdate struct {
	Title     *string         `json:"title"`
	Slug      *string         `json:"slug"`
	Blocks    *[]models.Block `json:"blocks"`
	Published *bool           `json:"published"`
	Order     *int            `json:"order"`
}

// getPublishedPages returns published pages sorted by display order.
func (h pageHandler) getPublishedPages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := h.pageRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if pages == nil {
			pages = []models.Page{}
		}
		h.responder.WriteJSON(w, pages)
	}
}

// getPublishedPageBySlug returns a published page. An unpublished page
// with the requested slug looks the same as no page at all.
func (h pageHandler) getPublishedPageBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		page, err := h.pageRepo.FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

// getAllPages returns every page, drafts included, for the management view.
func (h pageHandler) getAllPages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := h.pageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if pages == nil {
			pages = []models.Page{}
		}
		h.responder.WriteJSON(w, pages)
	}
}

// createPage creates a new page. Slug uniqueness is decided by the store's
// unique index, so a duplicate surfaces as a conflict even under
// concurrent creation.
func (h pageHandler) createPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PageCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode page request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		blocks := req.Blocks
		if blocks == nil {
			blocks = []models.Block{}
		}
		assignBlockIDs(blocks)

		now := time.Now().UTC()
		page := models.Page{
			ID:        uuid.New(),
			Title:     req.Title,
			Slug:      req.Slug,
			Blocks:    blocks,
			Published: req.Published,
			Order:     req.Order,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := h.pageRepo.Add(&page); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, page)
	}
}

// updatePage applies only the fields present in the request and always
// refreshes updated_at.
func (h pageHandler) updatePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID, err := parseIDParam(r, "pageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		page, err := h.pageRepo.FindByID(pageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req PageUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode page request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title != nil {
			page.Title = *req.Title
		}
		if req.Slug != nil {
			page.Slug = *req.Slug
		}
		if req.Blocks != nil {
			blocks := *req.Blocks
			if blocks == nil {
				blocks = []models.Block{}
			}
			assignBlockIDs(blocks)
			page.Blocks = blocks
		}
		if req.Published != nil {
			page.Published = *req.Published
		}
		if req.Order != nil {
			page.Order = *req.Order
		}
		page.UpdatedAt = time.Now().UTC()

		if err := h.pageRepo.Update(page); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, page)
	}
}

// deletePage removes a page together with its embedded blocks.
func (h pageHandler) deletePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID, err := parseIDParam(r, "pageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.pageRepo.Delete(pageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "page deleted successfully",
		})
	}
}

// assignBlockIDs gives an identifier to any block the caller supplied
// without one. Caller-supplied order and sequence are preserved.
func assignBlockIDs(blocks []models.Block) {
	for i := range blocks {
		if blocks[i].ID == uuid.Nil {
			blocks[i].ID = uuid.New()
		}
	}
}

// parseIDParam reads a UUID path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
