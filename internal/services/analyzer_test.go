package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-analyzer/internal/models"
)

const scenarioAText = "lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod"

var scenarioBSkills = []string{
	"Python", "SQL", "Tableau", "Java", "JavaScript", "HTML", "CSS", "React", "Angular",
	"MongoDB", "Git", "Statistics", "Pandas", "Numpy", "TensorFlow", "Keras", "PyTorch",
	"Docker", "Kubernetes", "Linux", "Scrum", "Kanban", "Figma", "Django", "Flask",
}

func scenarioBText() string {
	return "Jane Doe\njane.doe@example.com\n+44 20 7946 0958\n" + strings.Join(scenarioBSkills, ", ") + "\n"
}

func newRuleAnalyzer() AnalyzerService {
	return NewAnalyzerService(ruleEngine(), NewDocumentReader(nil), nil)
}

func TestAnalyzeScenarioNothingFound(t *testing.T) {
	result, err := newRuleAnalyzer().Analyze(context.Background(), scenarioAText)
	require.NoError(t, err)

	assert.Equal(t, models.NotAvailable, result.Name)
	assert.Equal(t, models.NotAvailable, result.Phone)
	assert.Equal(t, models.NotAvailable, result.Email)
	assert.Empty(t, result.Skills)
	assert.Zero(t, result.AtsScore)
	assert.Equal(t, "Data Science", result.Category)
	assert.Equal(t, "Data Scientist", result.JobTitle)

	tips := priorities(result.Tips)
	require.GreaterOrEqual(t, len(tips), 4)
	assert.Equal(t, []models.TipPriority{
		models.PriorityCritical,
		models.PriorityCritical,
		models.PriorityHigh,
	}, tips[:3])
	assert.Equal(t, models.PriorityGeneral, tips[len(tips)-1])
	assert.NotContains(t, tips, models.PriorityPositive)
}

func TestAnalyzeScenarioCompleteResume(t *testing.T) {
	result, err := newRuleAnalyzer().Analyze(context.Background(), scenarioBText())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Name)
	assert.Equal(t, "jane.doe@example.com", result.Email)
	assert.Equal(t, "44 20 7946 0958", result.Phone)
	assert.Len(t, result.Skills, 25)
	assert.Equal(t, 100, result.AtsScore)
	assert.Equal(t, "Software Engineering", result.Category)
	assert.Equal(t, "Machine Learning Engineer", result.JobTitle)

	assert.Equal(t, []models.TipPriority{
		models.PriorityPositive,
		models.PriorityMedium,
		models.PriorityTargeting,
		models.PriorityGeneral,
	}, priorities(result.Tips))
	assert.Equal(t, "High Keyword Volume", result.Tips[1].Title)
}

func TestAnalyzeModelMissingAborts(t *testing.T) {
	analyzer := NewAnalyzerService(
		NewClassificationEngine(nil, NewRuleBasedModel(SlotJobRecommendation), nil),
		NewDocumentReader(nil), nil)

	result, err := analyzer.Analyze(context.Background(), scenarioBText())
	assert.Nil(t, result)
	require.True(t, IsModelMissing(err))
	assert.Equal(t, MsgModelLoadFailed, UserMessage(err))

	analyzer = NewAnalyzerService(
		NewClassificationEngine(NewRuleBasedModel(SlotCategory), nil, nil),
		NewDocumentReader(nil), nil)
	_, err = analyzer.Analyze(context.Background(), scenarioBText())
	require.True(t, IsModelMissing(err))
	assert.Contains(t, err.Error(), "Job Recommendation")
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	_, err := newRuleAnalyzer().Analyze(context.Background(), " \n ")
	requireInputError(t, err, MsgEmptyContent)
}

func TestAnalyzeDocument(t *testing.T) {
	analyzer := newRuleAnalyzer()

	r, size := readerFor(scenarioBText())
	result, err := analyzer.AnalyzeDocument(context.Background(), "jane.txt", r, size)
	require.NoError(t, err)
	assert.Equal(t, 100, result.AtsScore)

	r, size = readerFor(scenarioBText())
	_, err = analyzer.AnalyzeDocument(context.Background(), "jane.docx", r, size)
	requireInputError(t, err, MsgInvalidFormat)
	assert.Zero(t, r.reads)
}
