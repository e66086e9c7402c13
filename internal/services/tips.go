package services

import (
	"fmt"

	"alfredoptarigan/ats-analyzer/internal/models"
)

const (
	lowSkillThreshold  = 5
	highSkillThreshold = 20
)

// GenerateTips evaluates each feedback rule in order. When none of the tips is
// critical, a positive tip leads the list.
func GenerateTips(name, phone, email string, skills []string, category string) []models.Tip {
	var tips []models.Tip

	if name == models.NotAvailable {
		tips = append(tips, models.Tip{
			Title:    "Name Extraction Failed",
			Detail:   "Ensure your full name is clear, capitalized, and positioned at the very top of the document for easier ATS parsing.",
			Priority: models.PriorityCritical,
		})
	}

	if phone == models.NotAvailable || email == models.NotAvailable {
		tips = append(tips, models.Tip{
			Title:    "Missing Contact Details",
			Detail:   "ATS systems must easily find your phone number and email. Place them directly under your name, separated by standard characters like spaces or newlines.",
			Priority: models.PriorityCritical,
		})
	}

	numSkills := len(skills)
	switch {
	case numSkills < lowSkillThreshold:
		tips = append(tips, models.Tip{
			Title:    "Low Skill Density",
			Detail:   fmt.Sprintf("Only found %d recognized skills. Review the job description and incorporate more specific keywords and tools relevant to your target role.", numSkills),
			Priority: models.PriorityHigh,
		})
	case numSkills > highSkillThreshold:
		tips = append(tips, models.Tip{
			Title:    "High Keyword Volume",
			Detail:   "You have many skills, but ensure they are backed up by context (e.g., job descriptions) rather than just being a long list. Quality over quantity is best for ATS.",
			Priority: models.PriorityMedium,
		})
	}

	if category != "" && !IsModelError(category) {
		tips = append(tips, models.Tip{
			Title:    fmt.Sprintf("Target Focus: %s Roles", category),
			Detail:   fmt.Sprintf("Since the system classified you as a %q candidate, tailor your summary and work history to emphasize achievements directly relevant to this field.", category),
			Priority: models.PriorityTargeting,
		})
	}

	tips = append(tips, models.Tip{
		Title:    "Verify File Type",
		Detail:   "Always submit your resume as a standard PDF or DOCX file (avoiding complex graphics) to maximize readability by different ATS versions.",
		Priority: models.PriorityGeneral,
	})

	for _, tip := range tips {
		if tip.Priority == models.PriorityCritical {
			return tips
		}
	}

	positive := models.Tip{
		Title:    "Good Structure Detected",
		Detail:   "Your resume seems well-structured and highly parseable. Focus on quantifying your achievements (numbers and metrics) for maximum impact.",
		Priority: models.PriorityPositive,
	}
	return append([]models.Tip{positive}, tips...)
}
