package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type homeContentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	homeContentRepo database.HomeContentRepo
}

func newHomeContentHandler(homeContentRepo database.HomeContentRepo) homeContentHandler {
	logger := log.With().Str("handlerName", "homeContentHandler").Logger()

	return homeContentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		homeContentRepo: homeContentRepo,
	}
}

// HomeContentUpdate carries only the fields the caller wants changed.
type HomeContentUpdate struct {
	HeroTitle    *string                   `json:"hero_title"`
	HeroSubtitle *string                   `json:"hero_subtitle"`
	HeroImage    *string                   `json:"hero_image"`
	Sections     *[]map[string]interface{} `json:"sections"`
}

func (h homeContentHandler) getHomeContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := h.homeContentRepo.Get()
		if err != nil {
			if errs.IsNotFound(err) {
				defaults := models.DefaultHomeContent()
				h.responder.WriteJSON(w, defaults)
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, content)
	}
}

func (h homeContentHandler) updateHomeContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HomeContentUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode home content request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		content, err := h.homeContentRepo.Get()
		if err != nil {
			if !errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
				return
			}
			defaults := models.DefaultHomeContent()
			content = &defaults
		}

		if req.HeroTitle != nil {
			content.HeroTitle = *req.HeroTitle
		}
		if req.HeroSubtitle != nil {
			content.HeroSubtitle = *req.HeroSubtitle
		}
		if req.HeroImage != nil {
			content.HeroImage = *req.HeroImage
		}
		if req.Sections != nil {
			sections := *req.Sections
			if sections == nil {
				sections = []map[string]interface{}{}
			}
			content.Sections = sections
		}
		content.UpdatedAt = time.Now().UTC()

		if err := h.homeContentRepo.Upsert(content); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, content)
	}
}
