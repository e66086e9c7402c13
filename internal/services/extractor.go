package services

import (
	"regexp"
	"strings"

	"alfredoptarigan/ats-analyzer/internal/models"
)

// nameScanLimit bounds the name search to the header of the document, in characters.
const nameScanLimit = 1000

var (
	namePattern  = regexp.MustCompile(`(\b[A-Z][a-z]+\b)[` + spaceClass + `](\b[A-Z][a-z]+\b)(?:[` + spaceClass + `](\b[A-Z][a-z]+\b))?(?:[` + spaceClass + `](\b[A-Z][a-z]+\b))?`)
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.` + spaceClass + `]?)?\(?\d{2,4}\)?[-.` + spaceClass + `]?\d{2,4}[-.` + spaceClass + `]?\d{3,4}[-.` + spaceClass + `]?\d{3,4}\b`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// PDF extraction tends to glue the "Phone"/"Email" label tail onto the address.
	emailLabelArtifact = regexp.MustCompile(`(?i)^(pe|ph)`)
	emailJunk          = regexp.MustCompile(`^\W+|\s+`)
)

// ExtractName looks for two to four consecutive capitalized words near the top of the
// raw text. It must see the text before normalization, which lowercases everything.
func ExtractName(raw string) string {
	head := raw
	if runes := []rune(raw); len(runes) > nameScanLimit {
		head = string(runes[:nameScanLimit])
	}

	match := namePattern.FindStringSubmatch(head)
	if match == nil {
		return models.NotAvailable
	}

	parts := make([]string, 0, 4)
	for _, group := range match[1:] {
		if group != "" {
			parts = append(parts, group)
		}
	}
	return strings.Join(parts, " ")
}

func ExtractPhone(text string) string {
	if match := phonePattern.FindString(text); match != "" {
		return match
	}
	return models.NotAvailable
}

func ExtractEmail(text string) string {
	email := emailPattern.FindString(text)
	if email == "" {
		return models.NotAvailable
	}

	email = emailLabelArtifact.ReplaceAllString(email, "")
	email = emailJunk.ReplaceAllString(email, "")
	if email == "" {
		return models.NotAvailable
	}
	return email
}

func ExtractSkills(text string) []string {
	return SkillVocabulary.Match(text)
}

func ExtractEducation(text string) []string {
	return EducationVocabulary.Match(text)
}

// Extract runs every pattern extractor over the raw document text. It never fails:
// a miss is reported as "N/A" or an empty set.
func Extract(raw string) models.ExtractionResult {
	return models.ExtractionResult{
		Name:      ExtractName(raw),
		Phone:     ExtractPhone(raw),
		Email:     ExtractEmail(raw),
		Skills:    ExtractSkills(raw),
		Education: ExtractEducation(raw),
	}
}
