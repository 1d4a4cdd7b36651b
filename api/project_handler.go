package api

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/mpecho/portfolio-backend/content"
	"github.com/mpecho/portfolio-backend/database"
	"github.com/mpecho/portfolio-backend/errs"
	"github.com/mpecho/portfolio-backend/models"
	"github.com/mpecho/portfolio-backend/storage"
)

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	projectImageRepo *database.ProjectImageRepo
	uploader         *storage.S3Uploader
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectImageRepo *database.ProjectImageRepo, uploader *storage.S3Uploader) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		projectImageRepo: projectImageRepo,
		uploader:         uploader,
	}
}

// projectRequest is the admin panel's create/update payload. Technologies
// arrives as the form's comma-separated string; images, when present,
// replaces the project's entire gallery.
type projectRequest struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Link         *string           `json:"link"`
	GithubLink   *string           `json:"github_link"`
	Technologies string            `json:"technologies"`
	Status       string            `json:"status"`
	IsFullPage   bool              `json:"is_full_page"`
	Content      *content.Document `json:"content_structure"`
	Images       *[]string         `json:"images"`
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total,omitempty"`
}

// getAllProjects retrieves all projects with their gallery images, newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectPage returns the audience-facing detail page for a project:
// the enabled full-page sections when the project has them, a coming-soon
// placeholder otherwise.
func (h projectHandler) getProjectPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, buildProjectPage(*project))
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Status == "" {
			req.Status = models.StatusCompleted
		}
		if !models.ValidStatus(req.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be completed or in-progress"))
			return
		}

		project := models.Project{
			Title:        req.Title,
			Description:  req.Description,
			Link:         req.Link,
			GithubLink:   req.GithubLink,
			Technologies: datatypes.NewJSONSlice(models.ParseTechnologies(req.Technologies)),
			Status:       req.Status,
			IsFullPage:   req.IsFullPage,
		}
		if req.Content != nil {
			project.SetDocument(*req.Content)
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		if req.Images != nil {
			if err := h.projectImageRepo.ReplaceForProject(project.ID, *req.Images); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("save images for", "project", err))
				return
			}
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateProject updates an existing project. The record is overwritten with
// the request's values; simultaneous editors are last-write-wins.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Status == "" {
			req.Status = models.StatusCompleted
		}
		if !models.ValidStatus(req.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be completed or in-progress"))
			return
		}

		existing.Title = req.Title
		existing.Description = req.Description
		existing.Link = req.Link
		existing.GithubLink = req.GithubLink
		existing.Technologies = datatypes.NewJSONSlice(models.ParseTechnologies(req.Technologies))
		existing.Status = req.Status
		existing.IsFullPage = req.IsFullPage
		if req.Content != nil {
			existing.SetDocument(*req.Content)
		}
		existing.Images = nil

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		// Replacing the gallery is delete-then-insert, never a merge.
		if req.Images != nil {
			if err := h.projectImageRepo.ReplaceForProject(projectID, *req.Images); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("save images for", "project", err))
				return
			}
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// saveProjectContent assembles and persists a full-page project's content
// document from multipart editor state: JSON form state plus the files
// still pending upload per section. Any upload failure aborts the save
// before the record is touched.
func (h projectHandler) saveProjectContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("object storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(48 << 20); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		documentJSON := r.FormValue("document")
		if documentJSON == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("document"))
			return
		}

		var doc content.EditableDocument
		if err := json.Unmarshal([]byte(documentJSON), &doc); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode editor document")
			h.responder.WriteError(w, errs.NewInvalidFieldError("document", "invalid JSON"))
			return
		}

		input, err := h.collectPendingFiles(r.MultipartForm)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Doc = doc

		assembler := content.NewAssembler(storageUploader{h.uploader})
		assembled, err := assembler.Assemble(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.SetDocument(assembled)
		project.Images = nil
		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update content for", "project", err))
			return
		}

		h.responder.WriteJSON(w, assembled)
	}
}

// collectPendingFiles reads the multipart file parts into a SaveInput and
// validates every file up front so a bad file aborts before any network
// call. Part names: landing_desktop, landing_mobile, auth_login,
// auth_register (single), panel_images and role_images_<i> (batches).
func (h projectHandler) collectPendingFiles(form *multipart.Form) (content.SaveInput, error) {
	input := content.SaveInput{RoleFiles: map[int][]content.PendingFile{}}
	var all []storage.File

	single := func(field string) (*content.PendingFile, error) {
		headers := form.File[field]
		if len(headers) == 0 {
			return nil, nil
		}
		f, err := readPendingFile(headers[0])
		if err != nil {
			return nil, err
		}
		all = append(all, storage.File{Name: f.Name, ContentType: f.ContentType, Data: f.Data})
		return &f, nil
	}
	batch := func(field string) ([]content.PendingFile, error) {
		headers := form.File[field]
		files := make([]content.PendingFile, 0, len(headers))
		for _, header := range headers {
			f, err := readPendingFile(header)
			if err != nil {
				return nil, err
			}
			all = append(all, storage.File{Name: f.Name, ContentType: f.ContentType, Data: f.Data})
			files = append(files, f)
		}
		return files, nil
	}

	var err error
	if input.LandingDesktop, err = single("landing_desktop"); err != nil {
		return content.SaveInput{}, err
	}
	if input.LandingMobile, err = single("landing_mobile"); err != nil {
		return content.SaveInput{}, err
	}
	if input.PanelFiles, err = batch("panel_images"); err != nil {
		return content.SaveInput{}, err
	}
	// Role parts are collected from the form, not from the document's role
	// list, so a part addressing a role that does not exist still reaches the
	// assembler and aborts the save instead of vanishing.
	for field := range form.File {
		idxStr, found := strings.CutPrefix(field, "role_images_")
		if !found {
			continue
		}
		i, err := strconv.Atoi(idxStr)
		if err != nil {
			return content.SaveInput{}, errs.NewInvalidFieldError(field, "role index must be a number")
		}
		files, err := batch(field)
		if err != nil {
			return content.SaveInput{}, err
		}
		if len(files) > 0 {
			input.RoleFiles[i] = files
		}
	}
	if input.AuthLogin, err = single("auth_login"); err != nil {
		return content.SaveInput{}, err
	}
	if input.AuthRegister, err = single("auth_register"); err != nil {
		return content.SaveInput{}, err
	}

	if err := storage.ValidateBatch(all); err != nil {
		return content.SaveInput{}, err
	}
	return input, nil
}

// deleteProject deletes a project by ID, cascading to its image records
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return uuid.Nil, false
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return uuid.Nil, false
	}
	return projectID, true
}

func readPendingFile(header *multipart.FileHeader) (content.PendingFile, error) {
	file, err := header.Open()
	if err != nil {
		return content.PendingFile{}, errs.NewBadRequestError("unreadable file part: " + header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return content.PendingFile{}, errs.NewBadRequestError("unreadable file part: " + header.Filename)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return content.PendingFile{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
