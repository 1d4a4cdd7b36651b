package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/database"
	"github.com/mpecho/portfolio-backend/errs"
	"github.com/mpecho/portfolio-backend/models"
)

type heroImageHandler struct {
	responder     Responder
	logger        zerolog.Logger
	heroImageRepo *database.HeroImageRepo
}

func newHeroImageHandler(heroImageRepo *database.HeroImageRepo) heroImageHandler {
	logger := log.With().Str("handlerName", "heroImageHandler").Logger()

	return heroImageHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		heroImageRepo: heroImageRepo,
	}
}

type heroImageRequest struct {
	Image string  `json:"image"`
	Title *string `json:"title"`
	Order int     `json:"order"`
}

// getAllHeroImages retrieves every hero banner image in display order
func (h heroImageHandler) getAllHeroImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.heroImageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero images", "hero images", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// createHeroImage creates a new hero banner image
func (h heroImageHandler) createHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req heroImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hero image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		image := models.HeroImage{
			Image: req.Image,
			Title: req.Title,
			Order: req.Order,
		}

		if err := h.heroImageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create hero image", "hero image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

// updateHeroImage updates an existing hero banner image
func (h heroImageHandler) updateHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, ok := h.parseHeroImageID(w, r)
		if !ok {
			return
		}

		existing, err := h.heroImageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find hero image", "hero image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("hero image not found"))
			return
		}

		var req heroImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hero image request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		existing.Image = req.Image
		existing.Title = req.Title
		existing.Order = req.Order

		if err := h.heroImageRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update hero image", "hero image", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteHeroImage deletes a hero banner image by ID
func (h heroImageHandler) deleteHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, ok := h.parseHeroImageID(w, r)
		if !ok {
			return
		}

		if err := h.heroImageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete hero image", "hero image", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "hero image deleted successfully",
		})
	}
}

func (h heroImageHandler) parseHeroImageID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	imageIDStr := chi.URLParam(r, "heroImageID")
	if imageIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing heroImageID"))
		return uuid.Nil, false
	}

	imageID, err := uuid.Parse(imageIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid heroImageID"))
		return uuid.Nil, false
	}
	return imageID, true
}
