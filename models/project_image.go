package models

import "github.com/google/uuid"

// ProjectImage is one image in a project's simple gallery. A project's
// gallery is replaced wholesale on save, never merged.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_image_project_id;constraint:OnDelete:CASCADE"`
	Image     string    `json:"image" db:"image" gorm:"type:text;not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (ProjectImage) TableName() string {
	return "portfolio_projectimage"
}
