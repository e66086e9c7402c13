package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ats-analyzer/internal/models"
	"alfredoptarigan/ats-analyzer/internal/repositories"
)

type SubmissionHandler struct {
	submissions repositories.SubmissionRepository
}

func NewSubmissionHandler(submissions repositories.SubmissionRepository) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) HandleGetSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid submission ID format")
	}

	submission, err := h.submissions.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return errorJSON(c, fiber.StatusNotFound, "Submission not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load submission")
	}

	return c.JSON(models.SubmissionResponse{
		ID:           submission.ID.String(),
		Status:       string(submission.Status),
		FileName:     submission.OriginalFileName,
		FileType:     submission.FileType,
		ErrorMessage: submission.ErrorMessage,
	})
}
