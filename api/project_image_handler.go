package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpecho/portfolio-backend/database"
	"github.com/mpecho/portfolio-backend/errs"
	"github.com/mpecho/portfolio-backend/models"
)

type projectImageHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectImageRepo *database.ProjectImageRepo
	projectRepo      *database.ProjectRepo
}

func newProjectImageHandler(projectImageRepo *database.ProjectImageRepo, projectRepo *database.ProjectRepo) projectImageHandler {
	logger := log.With().Str("handlerName", "projectImageHandler").Logger()

	return projectImageHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectImageRepo: projectImageRepo,
		projectRepo:      projectRepo,
	}
}

type projectImagesRequest struct {
	Images []struct {
		ProjectID uuid.UUID `json:"project_id"`
		Image     string    `json:"image"`
	} `json:"images"`
}

// insertProjectImages bulk-inserts gallery image records
func (h projectImageHandler) insertProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectImagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project images request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(req.Images) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("images"))
			return
		}

		images := make([]models.ProjectImage, 0, len(req.Images))
		seen := make(map[uuid.UUID]bool)
		for _, img := range req.Images {
			if img.ProjectID == uuid.Nil {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("project_id"))
				return
			}
			if img.Image == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
				return
			}

			if !seen[img.ProjectID] {
				project, err := h.projectRepo.FindByID(img.ProjectID)
				if err != nil {
					h.responder.WriteError(w, wrapDatabaseError("find project for", "project images", err))
					return
				}
				if project == nil {
					h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
					return
				}
				seen[img.ProjectID] = true
			}

			images = append(images, models.ProjectImage{ProjectID: img.ProjectID, Image: img.Image})
		}

		if err := h.projectImageRepo.AddBatch(images); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("insert", "project images", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"count":  len(images),
		})
	}
}

// deleteProjectImages removes every gallery image owned by one project
func (h projectImageHandler) deleteProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := r.URL.Query().Get("project_id")
		if projectIDStr == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("project_id"))
			return
		}

		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project_id"))
			return
		}

		if err := h.projectImageRepo.DeleteForProject(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project images", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project images deleted successfully",
		})
	}
}
