package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Get("/day/:date", handler.Day)
	api.Get("/calendar/:year/:month", handler.Calendar)
	api.Get("/stats", handler.Stats)
	api.Post("/reload", handler.Reload)
}
