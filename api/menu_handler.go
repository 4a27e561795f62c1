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

type menuHandler struct {
	responder    Responder
	logger       zerolog.Logger
	menuItemRepo database.MenuItemRepo
}

func newMenuHandler(menuItemRepo database.MenuItemRepo) menuHandler {
	logger := log.With().Str("handlerName", "menuHandler").Logger()

	return menuHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		menuItemRepo: menuItemRepo,
	}
}

// MenuItemCreate is the payload for creating a menu item.
type MenuItemCreate struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

func (h menuHandler) getMenuItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.menuItemRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if items == nil {
			items = []models.MenuItem{}
		}
		h.responder.WriteJSON(w, items)
	}
}

func (h menuHandler) createMenuItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MenuItemCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode menu item request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Label == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("label"))
			return
		}
		if req.URL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("url"))
			return
		}

		item := models.MenuItem{
			ID:        uuid.New(),
			Label:     req.Label,
			URL:       req.URL,
			Order:     req.Order,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.menuItemRepo.Add(&item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, item)
	}
}

func (h menuHandler) deleteMenuItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseIDParam(r, "itemID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.menuItemRepo.Delete(itemID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "menu item deleted successfully",
		})
	}
}
