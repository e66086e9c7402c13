package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-analyzer/internal/models"
)

func sampleResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		ClassificationOutcome: models.ClassificationOutcome{
			Category: "Software Engineering",
			JobTitle: "Backend Developer",
		},
		ExtractionResult: models.ExtractionResult{
			Name:      "Jane Doe",
			Phone:     "44 20 7946 0958",
			Email:     "jane.doe@example.com",
			Skills:    []string{"Go", "SQL"},
			Education: []string{"Bachelor"},
		},
		AtsScore: 8,
		Tips: []models.Tip{
			{Title: "Low Skill Density", Detail: "more skills", Priority: models.PriorityHigh},
			{Title: "File Format Check", Detail: "use pdf", Priority: models.PriorityGeneral},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	rows := []Row{
		{Source: "jane.txt", Result: sampleResult()},
		{Source: "broken.pdf", Err: errors.New("could not extract content")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, SkillsSheet, TipsSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "ATS Score", summary[0][7])
	assert.Equal(t, []string{
		"jane.txt", "completed", "Software Engineering", "Backend Developer", "Jane Doe",
		"44 20 7946 0958", "jane.doe@example.com", "8", "2", "Bachelor",
	}, summary[1])
	assert.Equal(t, "failed", summary[2][1])
	assert.Equal(t, "could not extract content", summary[2][10])

	skills, err := f.GetRows(SkillsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"File", "Skill"}, {"jane.txt", "Go"}, {"jane.txt", "SQL"}}, skills)

	tips, err := f.GetRows(TipsSheet)
	require.NoError(t, err)
	require.Len(t, tips, 3)
	assert.Equal(t, []string{"jane.txt", "High Priority", "Low Skill Density", "more skills"}, tips[1])
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Len(t, summary, 1)
}
