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

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo database.SettingsRepo
}

func newSettingsHandler(settingsRepo database.SettingsRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
	}
}

// SettingsUpdate carries only the fields the caller wants changed.
type SettingsUpdate struct {
	Theme           *string            `json:"theme"`
	SiteTitle       *string            `json:"site_title"`
	SiteDescription *string            `json:"site_description"`
	AdminEmail      *string            `json:"admin_email"`
	SocialLinks     *map[string]string `json:"social_links"`
}

// getSettings returns the singleton, or defaults when it was never
// written. Reading persists nothing.
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.Get()
		if err != nil {
			if errs.IsNotFound(err) {
				defaults := models.DefaultSettings()
				h.responder.WriteJSON(w, defaults)
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}

// updateSettings merges only the supplied fields into the singleton,
// creating it on first write.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode settings request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		settings, err := h.settingsRepo.Get()
		if err != nil {
			if !errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
				return
			}
			defaults := models.DefaultSettings()
			settings = &defaults
		}

		if req.Theme != nil {
			settings.Theme = *req.Theme
		}
		if req.SiteTitle != nil {
			settings.SiteTitle = *req.SiteTitle
		}
		if req.SiteDescription != nil {
			settings.SiteDescription = *req.SiteDescription
		}
		if req.AdminEmail != nil {
			settings.AdminEmail = *req.AdminEmail
		}
		if req.SocialLinks != nil {
			links := *req.SocialLinks
			if links == nil {
				links = map[string]string{}
			}
			settings.SocialLinks = links
		}
		settings.UpdatedAt = time.Now().UTC()

		if err := h.settingsRepo.Upsert(settings); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, settings)
	}
}
