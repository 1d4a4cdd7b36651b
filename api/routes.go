package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the public contact form and
// the session-gated admin surface. Every mutating endpoint except the
// contact form sits behind the session gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/login", handlers.authHandler.login())
		r.Post("/logout", handlers.authHandler.logout())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/project/{projectID}/page", handlers.projectHandler.getProjectPage())

		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/hero-images", handlers.heroImageHandler.getAllHeroImages())

		r.Post("/contact", handlers.contactHandler.createContact())
	})

	// Session-gated admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireSession)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Put("/project/{projectID}/content", handlers.projectHandler.saveProjectContent())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/project-images", handlers.projectImageHandler.insertProjectImages())
		r.Delete("/project-images", handlers.projectImageHandler.deleteProjectImages())

		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Put("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		r.Post("/hero-image", handlers.heroImageHandler.createHeroImage())
		r.Put("/hero-image/{heroImageID}", handlers.heroImageHandler.updateHeroImage())
		r.Delete("/hero-image/{heroImageID}", handlers.heroImageHandler.deleteHeroImage())

		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Delete("/contact/{contactID}", handlers.contactHandler.deleteContact())

		r.Post("/uploads", handlers.uploadHandler.uploadImages())
	})
}
