package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-analyzer/internal/services"
)

type HealthHandler struct {
	engine *services.ClassificationEngine
}

func NewHealthHandler(engine *services.ClassificationEngine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// HandleHealth reports liveness and which slots run on trained models.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
		"models": h.engine.Status(),
	})
}
