package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpecho/portfolio-backend/models"
)

type HeroImageRepo struct {
	db *gorm.DB
}

func NewHeroImageRepo(db *gorm.DB) *HeroImageRepo {
	return &HeroImageRepo{db}
}

// FindAll returns all hero images in display order
func (r *HeroImageRepo) FindAll() ([]*models.HeroImage, error) {
	var images []*models.HeroImage
	err := r.db.Order("display_order ASC").Find(&images).Error
	return images, err
}

// FindByID returns a hero image by its ID, or nil when it does not exist
func (r *HeroImageRepo) FindByID(id uuid.UUID) (*models.HeroImage, error) {
	var image models.HeroImage
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new hero image into the database
func (r *HeroImageRepo) Add(image *models.HeroImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing hero image in the database
func (r *HeroImageRepo) Update(image *models.HeroImage) error {
	return r.db.Save(image).Error
}

// Delete removes a hero image from the database by id
func (r *HeroImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HeroImage{}, "id = ?", id).Error
}
