package api

import (
	"github.com/mpecho/portfolio-backend/database"
	"github.com/mpecho/portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploader *storage.S3Uploader, sessions SessionManager, c map[string]string) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(sessions, c),
		projectHandler:      newProjectHandler(database.ProjectRepo(), database.ProjectImageRepo(), uploader),
		projectImageHandler: newProjectImageHandler(database.ProjectImageRepo(), database.ProjectRepo()),
		skillHandler:        newSkillHandler(database.SkillRepo()),
		heroImageHandler:    newHeroImageHandler(database.HeroImageRepo()),
		contactHandler:      newContactHandler(database.ContactRepo(), c),
		uploadHandler:       newUploadHandler(uploader),
	}
}
