package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpecho/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact messages, newest first
func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// Add inserts a new contact message into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Delete removes a contact message from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
