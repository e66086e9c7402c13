package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-analyzer/internal/models"
)

func priorities(tips []models.Tip) []models.TipPriority {
	out := make([]models.TipPriority, len(tips))
	for i, tip := range tips {
		out[i] = tip.Priority
	}
	return out
}

func titles(tips []models.Tip) []string {
	out := make([]string, len(tips))
	for i, tip := range tips {
		out[i] = tip.Title
	}
	return out
}

func TestGenerateTipsAllMissing(t *testing.T) {
	tips := GenerateTips(models.NotAvailable, models.NotAvailable, models.NotAvailable, nil,
		SlotCategory.ModelErrorSentinel())

	assert.Equal(t, []models.TipPriority{
		models.PriorityCritical,
		models.PriorityCritical,
		models.PriorityHigh,
		models.PriorityGeneral,
	}, priorities(tips))
	assert.Equal(t, "Only found 0 recognized skills. Review the job description and incorporate more specific keywords and tools relevant to your target role.", tips[2].Detail)
}

func TestGenerateTipsSingleContactTip(t *testing.T) {
	tips := GenerateTips("Jane Doe", models.NotAvailable, "jane@example.com", skillSet(10), "Design")

	assert.Equal(t, []string{"Missing Contact Details", "Target Focus: Design Roles", "Verify File Type"}, titles(tips))
}

func TestGenerateTipsPositiveLeads(t *testing.T) {
	tips := GenerateTips("Jane Doe", "44 20 7946 0958", "jane@example.com", skillSet(10), "Data Science")

	require.Len(t, tips, 3)
	assert.Equal(t, models.PriorityPositive, tips[0].Priority)
	assert.Equal(t, "Good Structure Detected", tips[0].Title)
	assert.Equal(t, models.PriorityTargeting, tips[1].Priority)
	assert.Contains(t, tips[1].Detail, `"Data Science"`)
	assert.Equal(t, models.PriorityGeneral, tips[2].Priority)
}

func TestGenerateTipsSkillRulesAreExclusive(t *testing.T) {
	few := titles(GenerateTips("Jane Doe", "1", "a@b.co", skillSet(3), "Design"))
	assert.Contains(t, few, "Low Skill Density")
	assert.NotContains(t, few, "High Keyword Volume")

	many := titles(GenerateTips("Jane Doe", "1", "a@b.co", skillSet(25), "Design"))
	assert.Contains(t, many, "High Keyword Volume")
	assert.NotContains(t, many, "Low Skill Density")

	for _, n := range []int{5, 20} {
		middle := titles(GenerateTips("Jane Doe", "1", "a@b.co", skillSet(n), "Design"))
		assert.NotContains(t, middle, "Low Skill Density")
		assert.NotContains(t, middle, "High Keyword Volume")
	}
}
