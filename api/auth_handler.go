package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lunaria-site/cms-backend/auth"
	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/errs"
	"github.com/lunaria-site/cms-backend/models"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	accountRepo database.AccountRepo
	tokens      *auth.TokenService
}

func newAuthHandler(accountRepo database.AccountRepo, tokens *auth.TokenService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// RegisterRequest is the payload for creating an admin account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// register creates an account and returns a bearer token. A duplicate
// username is a conflict; the store's unique index decides, so two
// concurrent registrations cannot both win.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		account := models.Account{
			ID:           uuid.New(),
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		}

		if err := h.accountRepo.Add(&account); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Issue(account.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// login verifies credentials and returns a bearer token. An unknown
// username and a wrong password are the same response, so the endpoint
// does not reveal which accounts exist.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		account, err := h.accountRepo.FindByUsername(req.Username)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, errs.NewInvalidCredentialsError())
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		if !auth.CheckPassword(req.Password, account.PasswordHash) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.tokens.Issue(account.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// me returns the authenticated account. The password hash is never
// serialized.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ctxGetUsername(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no authenticated subject"))
			return
		}

		account, err := h.accountRepo.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, account)
	}
}
