package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mpecho/portfolio-backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProject returns a project's gallery images in insertion order
func (r *ProjectImageRepo) FindByProject(projectID uuid.UUID) ([]models.ProjectImage, error) {
	var images []models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Find(&images).Error
	return images, err
}

// AddBatch inserts a batch of image records
func (r *ProjectImageRepo) AddBatch(images []models.ProjectImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

// ReplaceForProject swaps a project's entire image set in one transaction:
// delete-then-insert, never merge, so a re-saved gallery fully replaces the
// prior one.
func (r *ProjectImageRepo) ReplaceForProject(projectID uuid.UUID, urls []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		if len(urls) == 0 {
			return nil
		}
		images := make([]models.ProjectImage, 0, len(urls))
		for _, url := range urls {
			images = append(images, models.ProjectImage{ProjectID: projectID, Image: url})
		}
		return tx.Create(&images).Error
	})
}

// DeleteForProject removes every image record owned by a project
func (r *ProjectImageRepo) DeleteForProject(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectImage{}).Error
}
