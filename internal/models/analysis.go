package models

// NotAvailable stands in for a singular field the extractors could not find.
const NotAvailable = "N/A"

type TipPriority string

const (
	PriorityCritical  TipPriority = "Critical"
	PriorityHigh      TipPriority = "High Priority"
	PriorityMedium    TipPriority = "Medium Priority"
	PriorityTargeting TipPriority = "Targeting"
	PriorityGeneral   TipPriority = "General"
	PriorityPositive  TipPriority = "Positive"
)

type Tip struct {
	Title    string      `json:"title"`
	Detail   string      `json:"detail"`
	Priority TipPriority `json:"priority"`
}

// ExtractionResult holds the pattern-extracted signals of one résumé.
// Skills and Education are sets; they are kept sorted so output is stable.
type ExtractionResult struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Skills    []string `json:"extracted_skills"`
	Education []string `json:"extracted_education"`
}

type ClassificationOutcome struct {
	Category string `json:"predicted_category"`
	JobTitle string `json:"recommended_job"`
}

// AnalysisResult is the bundle handed to the presentation layer. No field is ever omitted.
type AnalysisResult struct {
	ClassificationOutcome
	ExtractionResult
	AtsScore int   `json:"ats_score"`
	Tips     []Tip `json:"personalized_tips"`
}
