package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (Contact) TableName() string {
	return "portfolio_contact"
}
