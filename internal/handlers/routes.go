package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the API. submissions is nil when the audit log is disabled.
func SetupRoutes(app *fiber.App, analyze *AnalyzeHandler, submissions *SubmissionHandler, health *HealthHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", health.HandleHealth)
	api.Post("/analyze", analyze.HandleAnalyze)

	endpoints := []string{
		"GET /api/v1/health",
		"POST /api/v1/analyze",
	}

	if submissions != nil {
		api.Get("/submissions/:id", submissions.HandleGetSubmission)
		endpoints = append(endpoints, "GET /api/v1/submissions/:id")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "ATS Resume Analyzer API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
