package database

import (
	"gorm.io/gorm"

	"github.com/mpecho/portfolio-backend/models"
)

type Database struct {
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
	skillRepo        *SkillRepo
	heroImageRepo    *HeroImageRepo
	contactRepo      *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		skillRepo:        NewSkillRepo(db),
		heroImageRepo:    NewHeroImageRepo(db),
		contactRepo:      NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) HeroImageRepo() *HeroImageRepo {
	return d.heroImageRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// AutoMigrate creates or updates the schema for every portfolio table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.ProjectImage{},
		&models.Skill{},
		&models.HeroImage{},
		&models.Contact{},
	)
}
