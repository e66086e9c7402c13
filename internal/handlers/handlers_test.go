package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-analyzer/internal/export"
	"alfredoptarigan/ats-analyzer/internal/models"
	"alfredoptarigan/ats-analyzer/internal/repositories"
	"alfredoptarigan/ats-analyzer/internal/services"
)

const completeResume = "Jane Doe\njane.doe@example.com\n+44 20 7946 0958\n" +
	"Python, SQL, Tableau, Java, JavaScript, HTML, CSS, React, Angular, MongoDB, Git, Statistics, " +
	"Pandas, Numpy, TensorFlow, Keras, PyTorch, Docker, Kubernetes, Linux, Scrum, Kanban, Figma, Django, Flask\n"

type memorySubmissions struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Submission
}

func newMemorySubmissions() *memorySubmissions {
	return &memorySubmissions{rows: make(map[uuid.UUID]models.Submission)}
}

func (m *memorySubmissions) Create(s *models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.ID] = *s
	return nil
}

func (m *memorySubmissions) FindByID(id uuid.UUID) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrSubmissionNotFound
	}
	return &s, nil
}

func (m *memorySubmissions) UpdateStatus(id uuid.UUID, status models.SubmissionStatus, errorMsg *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[id]
	if !ok {
		return repositories.ErrSubmissionNotFound
	}
	s.Status = status
	s.ErrorMessage = errorMsg
	m.rows[id] = s
	return nil
}

func newTestApp(engine *services.ClassificationEngine, repo repositories.SubmissionRepository) *fiber.App {
	analyzer := services.NewAnalyzerService(engine, services.NewDocumentReader(nil), nil)

	var submissionHandler *SubmissionHandler
	if repo != nil {
		submissionHandler = NewSubmissionHandler(repo)
	}

	app := fiber.New()
	SetupRoutes(app,
		NewAnalyzeHandler(analyzer, repo, 1<<20, nil),
		submissionHandler,
		NewHealthHandler(engine),
	)
	return app
}

func ruleEngine() *services.ClassificationEngine {
	return services.LoadClassificationEngine(context.Background(), nil, nil)
}

func uploadRequest(t *testing.T, target, filename, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAnalyzeReturnsResult(t *testing.T) {
	repo := newMemorySubmissions()
	app := newTestApp(ruleEngine(), repo)

	resp, err := app.Test(uploadRequest(t, "/api/v1/analyze", "jane.txt", completeResume), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, "Software Engineering", body["predicted_category"])
	assert.Equal(t, "Machine Learning Engineer", body["recommended_job"])
	assert.Equal(t, "Jane Doe", body["name"])
	assert.Equal(t, float64(100), body["ats_score"])
	assert.Len(t, body["extracted_skills"], 25)
	assert.NotNil(t, body["extracted_education"])
	assert.Len(t, body["personalized_tips"], 4)

	id, err := uuid.Parse(body["submission_id"].(string))
	require.NoError(t, err)
	stored, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionCompleted, stored.Status)
	assert.Equal(t, "txt", stored.FileType)
}

func TestAnalyzeInputErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		message  string
	}{
		{"no file", "", "", services.MsgNoFile},
		{"unsupported extension", "jane.docx", completeResume, services.MsgInvalidFormat},
		{"invalid utf8", "jane.txt", string([]byte{0xff, 0xfe}), services.MsgUnreadableTXT},
		{"empty text", "jane.txt", "   ", services.MsgEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(ruleEngine(), nil)

			resp, err := app.Test(uploadRequest(t, "/api/v1/analyze", tt.filename, tt.content), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			body := decode[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, fiber.StatusBadRequest, body.Code)
		})
	}
}

func TestAnalyzeRejectedSubmissionIsRecorded(t *testing.T) {
	repo := newMemorySubmissions()
	app := newTestApp(ruleEngine(), repo)

	resp, err := app.Test(uploadRequest(t, "/api/v1/analyze", "jane.docx", completeResume), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	require.Len(t, repo.rows, 1)
	for _, s := range repo.rows {
		assert.Equal(t, models.SubmissionRejected, s.Status)
		require.NotNil(t, s.ErrorMessage)
		assert.Equal(t, services.MsgInvalidFormat, *s.ErrorMessage)
	}
}

func TestAnalyzeModelMissing(t *testing.T) {
	app := newTestApp(services.NewClassificationEngine(nil, nil, nil), nil)

	resp, err := app.Test(uploadRequest(t, "/api/v1/analyze", "jane.txt", completeResume), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, services.MsgModelLoadFailed, body.Error)
}

func TestAnalyzeWorkbookFormat(t *testing.T) {
	app := newTestApp(ruleEngine(), nil)

	resp, err := app.Test(uploadRequest(t, "/api/v1/analyze?format=xlsx", "jane.txt", completeResume), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "jane_analysis.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "jane.txt", rows[1][0])
	assert.Equal(t, "100", rows[1][7])
}

func TestGetSubmission(t *testing.T) {
	repo := newMemorySubmissions()
	message := services.MsgEmptyContent
	id := uuid.New()
	require.NoError(t, repo.Create(&models.Submission{
		ID:               id,
		OriginalFileName: "scan.pdf",
		FileType:         "pdf",
		Status:           models.SubmissionRejected,
		ErrorMessage:     &message,
	}))
	app := newTestApp(ruleEngine(), repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/"+id.String(), nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[models.SubmissionResponse](t, resp)
	assert.Equal(t, "rejected", body.Status)
	assert.Equal(t, "scan.pdf", body.FileName)
	require.NotNil(t, body.ErrorMessage)
	assert.Equal(t, message, *body.ErrorMessage)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/"+uuid.NewString(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSubmissionRouteDisabledWithoutAuditLog(t *testing.T) {
	app := newTestApp(ruleEngine(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/submissions/"+uuid.NewString(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "submissions"))
}

func TestHealthReportsSlotModes(t *testing.T) {
	app := newTestApp(ruleEngine(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status string              `json:"status"`
		Models []models.SlotStatus `json:"models"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, []models.SlotStatus{
		{Slot: "categorization", Mode: "fallback"},
		{Slot: "job_recommendation", Mode: "fallback"},
	}, body.Models)
}
