package models

import "github.com/google/uuid"

// Skill represents one entry in the skills grid, grouped by category.
// Proficiency is a percentage in [0, 100].
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"not null;default:50"`
}

func (Skill) TableName() string {
	return "portfolio_skill"
}

// ValidProficiency reports whether p is in the allowed 0-100 range.
func ValidProficiency(p int) bool {
	return p >= 0 && p <= 100
}
