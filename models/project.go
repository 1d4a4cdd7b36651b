package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mpecho/portfolio-backend/content"
)

// Project status values.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID                             `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                                `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                                `json:"description" db:"description" gorm:"type:text;not null"`
	Link         *string                               `json:"link,omitempty" db:"link" gorm:"type:text"`
	GithubLink   *string                               `json:"github_link,omitempty" db:"github_link" gorm:"type:text"`
	Technologies datatypes.JSONSlice[string]           `json:"technologies" db:"technologies"`
	Status       string                                `json:"status" db:"status" gorm:"type:text;not null;default:completed"`
	CreatedAt    time.Time                             `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
	IsFullPage   bool                                  `json:"is_full_page" db:"is_full_page" gorm:"not null;default:false"`
	Content      *datatypes.JSONType[content.Document] `json:"content_structure,omitempty" db:"content_structure"`
	Images       []ProjectImage                        `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "portfolio_project"
}

// ValidStatus reports whether s is one of the known project statuses.
func ValidStatus(s string) bool {
	return s == StatusCompleted || s == StatusInProgress
}

// Document returns the decoded content-structure document, or an empty
// document when none is stored.
func (p Project) Document() content.Document {
	if p.Content == nil {
		return content.Document{}
	}
	return p.Content.Data()
}

// SetDocument stores doc as the project's content-structure column.
func (p *Project) SetDocument(doc content.Document) {
	wrapped := datatypes.NewJSONType(doc)
	p.Content = &wrapped
}
