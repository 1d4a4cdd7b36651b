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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

func (h skillHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (skillRequest, bool) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode skill request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return req, false
	}

	if req.Name == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
		return req, false
	}
	if req.Category == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
		return req, false
	}
	if !models.ValidProficiency(req.Proficiency) {
		h.responder.WriteError(w, errs.NewInvalidFieldError("proficiency", "must be between 0 and 100"))
		return req, false
	}
	return req, true
}

// getAllSkills retrieves all skills ordered by category
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// createSkill creates a new skill
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.decodeAndValidate(w, r)
		if !ok {
			return
		}

		skill := models.Skill{
			Name:        req.Name,
			Category:    req.Category,
			Proficiency: req.Proficiency,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// updateSkill updates an existing skill
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseSkillID(w, r)
		if !ok {
			return
		}

		existing, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		req, ok := h.decodeAndValidate(w, r)
		if !ok {
			return
		}

		existing.Name = req.Name
		existing.Category = req.Category
		existing.Proficiency = req.Proficiency

		if err := h.skillRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteSkill deletes a skill by ID
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseSkillID(w, r)
		if !ok {
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

func (h skillHandler) parseSkillID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	skillIDStr := chi.URLParam(r, "skillID")
	if skillIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing skillID"))
		return uuid.Nil, false
	}

	skillID, err := uuid.Parse(skillIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
		return uuid.Nil, false
	}
	return skillID, true
}
