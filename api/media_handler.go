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

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	mediaRepo database.MediaRepo
}

func newMediaHandler(mediaRepo database.MediaRepo) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mediaRepo: mediaRepo,
	}
}

// MediaItemCreate records metadata for an already-uploaded file. The
// binary itself lives elsewhere; the URL is not validated for
// reachability.
type MediaItemCreate struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
}

func (h mediaHandler) getMediaItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.mediaRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if items == nil {
			items = []models.MediaItem{}
		}
		h.responder.WriteJSON(w, items)
	}
}

func (h mediaHandler) createMediaItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MediaItemCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode media item request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Filename == "" {
			req.Filename = "unknown"
		}
		if req.Type == "" {
			req.Type = "image"
		}

		item := models.MediaItem{
			ID:        uuid.New(),
			Filename:  req.Filename,
			URL:       req.URL,
			Type:      req.Type,
			Size:      req.Size,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.mediaRepo.Add(&item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, item)
	}
}
