package models

import "github.com/google/uuid"

// HeroImage is one rotating banner image on the landing section.
// Order determines display order, ascending.
type HeroImage struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Image string    `json:"image" db:"image" gorm:"type:text;not null"`
	Title *string   `json:"title,omitempty" db:"title" gorm:"type:text"`
	Order int       `json:"order" db:"order" gorm:"column:display_order;not null;default:0"`
}

func (HeroImage) TableName() string {
	return "portfolio_heroimage"
}
