package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/export"
	"alfredoptarigan/ats-analyzer/internal/models"
	"alfredoptarigan/ats-analyzer/internal/repositories"
	"alfredoptarigan/ats-analyzer/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	submissions repositories.SubmissionRepository
	maxFileSize int64
	log         *zap.Logger
}

// NewAnalyzeHandler wires the analyze endpoint. submissions may be nil when the audit log is disabled.
func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	submissions repositories.SubmissionRepository,
	maxFileSize int64,
	log *zap.Logger,
) *AnalyzeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzeHandler{
		analyzer:    analyzer,
		submissions: submissions,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil || fileHeader.Filename == "" {
		return errorJSON(c, fiber.StatusBadRequest, services.MsgNoFile)
	}

	if fileHeader.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	submission := h.recordSubmission(fileHeader.Filename, fileHeader.Size)

	if _, err := services.ValidateExtension(fileHeader.Filename); err != nil {
		return h.fail(c, submission, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.fail(c, submission, fmt.Errorf("failed to open upload: %w", err))
	}
	defer file.Close()

	result, err := h.analyzer.AnalyzeDocument(c.UserContext(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return h.fail(c, submission, err)
	}

	h.updateSubmission(submission, models.SubmissionCompleted, nil)

	if strings.EqualFold(c.Query("format"), "xlsx") {
		var buf bytes.Buffer
		rows := []export.Row{{Source: fileHeader.Filename, Result: result}}
		if err := export.WriteWorkbook(&buf, rows); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, "failed to build workbook")
		}

		base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
		c.Attachment(base + "_analysis.xlsx")
		c.Set(fiber.HeaderContentType, xlsxContentType)
		return c.Send(buf.Bytes())
	}

	response := models.AnalyzeResponse{AnalysisResult: *result}
	if submission != nil {
		response.SubmissionID = submission.ID.String()
	}
	return c.JSON(response)
}

func (h *AnalyzeHandler) fail(c *fiber.Ctx, submission *models.Submission, err error) error {
	message := services.UserMessage(err)

	switch {
	case services.IsInputError(err):
		h.log.Info("Rejected resume", zap.Error(err))
		h.updateSubmission(submission, models.SubmissionRejected, &message)
		return errorJSON(c, fiber.StatusBadRequest, message)
	case services.IsModelMissing(err):
		h.log.Error("❌ Classification model missing", zap.Error(err))
	default:
		h.log.Error("❌ Analysis failed", zap.Error(err))
	}

	h.updateSubmission(submission, models.SubmissionFailed, &message)
	return errorJSON(c, fiber.StatusInternalServerError, message)
}

func (h *AnalyzeHandler) recordSubmission(filename string, size int64) *models.Submission {
	if h.submissions == nil {
		return nil
	}

	submission := &models.Submission{
		ID:               uuid.New(),
		OriginalFileName: filename,
		FileType:         strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
		FileSize:         size,
		Status:           models.SubmissionReceived,
	}
	if err := h.submissions.Create(submission); err != nil {
		// The audit log never blocks an analysis.
		h.log.Warn("⚠️ Failed to record submission", zap.Error(err))
		return nil
	}
	return submission
}

func (h *AnalyzeHandler) updateSubmission(submission *models.Submission, status models.SubmissionStatus, message *string) {
	if submission == nil {
		return
	}
	if err := h.submissions.UpdateStatus(submission.ID, status, message); err != nil {
		h.log.Warn("⚠️ Failed to update submission", zap.String("id", submission.ID.String()), zap.Error(err))
	}
}

func errorJSON(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.ErrorResponse{Error: message, Code: code})
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrSubmissionNotFound)
}
