package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
	"github.com/lunaria-site/cms-backend/services"
)

type contactHandler struct {
	responder    Responder
	logger       zerolog.Logger
	contactRepo  database.ContactRepo
	settingsRepo database.SettingsRepo
	notifier     services.Notifier
}

func newContactHandler(contactRepo database.ContactRepo, settingsRepo database.SettingsRepo, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		contactRepo:  contactRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
	}
}

// ContactCreate is the public contact-form payload.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact persists the submission unconditionally, then notifies the
// configured admin address if there is one. A notifier failure is logged
// and swallowed; the submission has already succeeded.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" || !strings.Contains(req.Email, "@") {
			h.responder.WriteError(w, errs.NewValidationError("email", "must be a valid email address"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		contact := models.Contact{
			ID:        uuid.New(),
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			CreatedAt: time.Now().UTC(),
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.notifyAdmin(contact)

		h.responder.WriteJSONStatus(w, http.StatusCreated, contact)
	}
}

// notifyAdmin sends the best-effort notification side effect. No admin
// address configured is a valid, silent no-op.
func (h contactHandler) notifyAdmin(contact models.Contact) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		if !errs.IsNotFound(err) {
			h.logger.Warn().Err(err).Msg("Failed to load settings for contact notification")
		}
		return
	}
	if settings.AdminEmail == "" {
		return
	}

	body := fmt.Sprintf(`<html>
	<body>
		<h2>New message from the website</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	</body>
</html>`, contact.Name, contact.Email, contact.Message)

	if err := h.notifier.Send(settings.AdminEmail, "New message from the website", body); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to send contact notification email")
	}
}

func (h contactHandler) getContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if contacts == nil {
			contacts = []models.Contact{}
		}
		h.responder.WriteJSON(w, contacts)
	}
}

// markContactRead flips the read flag. Marking a missing contact is a
// not-found error, like the sibling delete operations.
func (h contactHandler) markContactRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactRepo.MarkRead(contactID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact marked as read",
		})
	}
}
