package api

import (
	"github.com/mpecho/portfolio-backend/content"
	"github.com/mpecho/portfolio-backend/models"
)

// Page status values returned by the project page endpoint.
const (
	PageStatusFull       = "full"
	PageStatusComingSoon = "coming-soon"
)

// ProjectPage is the audience-facing detail page payload: either the
// rendered full-page sections or a coming-soon placeholder.
type ProjectPage struct {
	Status   string            `json:"status"`
	Project  models.Project    `json:"project"`
	Sections []content.Section `json:"sections,omitempty"`
}

// buildProjectPage assembles the detail-page response for a project. The
// content document is only consulted when is_full_page is set; otherwise it
// is dead data and the page falls back to coming-soon, as it does when the
// document is empty or every section is hidden.
func buildProjectPage(p models.Project) ProjectPage {
	if !p.IsFullPage {
		return ProjectPage{Status: PageStatusComingSoon, Project: p}
	}

	doc := p.Document()
	sections := content.RenderSections(doc)
	if len(sections) == 0 {
		return ProjectPage{Status: PageStatusComingSoon, Project: p}
	}

	return ProjectPage{Status: PageStatusFull, Project: p, Sections: sections}
}
