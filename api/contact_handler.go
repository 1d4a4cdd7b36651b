package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/database"
	"github.com/mpecho/portfolio-backend/errs"
	"github.com/mpecho/portfolio-backend/models"
	"github.com/mpecho/portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactRepo, config map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      config,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// createContact stores a public contact-form submission and forwards it to
// the site owner by email. The notification is best effort: a mail failure
// is logged, the stored record is the source of truth.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
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
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		contact := models.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "contact", err))
			return
		}

		if err := services.NotifyContact(h.config, contact); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to send contact notification email")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent successfully",
		})
	}
}

// getAllContacts retrieves every contact message, newest first
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}

// deleteContact deletes a contact message by ID
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactIDStr := chi.URLParam(r, "contactID")
		if contactIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing contactID"))
			return
		}

		contactID, err := uuid.Parse(contactIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact deleted successfully",
		})
	}
}
