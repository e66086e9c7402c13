package services

import (
	"context"
	"fmt"
	"strings"
)

type keywordTest func(text string) bool

func containsAny(words ...string) keywordTest {
	return func(text string) bool {
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
		return false
	}
}

func containsAll(words ...string) keywordTest {
	return func(text string) bool {
		for _, word := range words {
			if !strings.Contains(text, word) {
				return false
			}
		}
		return true
	}
}

func both(a, b keywordTest) keywordTest {
	return func(text string) bool {
		return a(text) && b(text)
	}
}

type KeywordRule struct {
	Label string
	Test  keywordTest
}

// RuleClassifier returns the label of the first matching rule, or its default.
type RuleClassifier struct {
	rules        []KeywordRule
	defaultLabel string
}

func (c *RuleClassifier) Predict(_ context.Context, features Features) ([]string, error) {
	text := strings.ToLower(features.Text)
	for _, rule := range c.rules {
		if rule.Test(text) {
			return []string{rule.Label}, nil
		}
	}
	return []string{c.defaultLabel}, nil
}

// IdentityVectorizer passes the cleaned text through untouched.
type IdentityVectorizer struct{}

func (IdentityVectorizer) Transform(_ context.Context, text string) (Features, error) {
	return Features{Text: text}, nil
}

var categoryRules = &RuleClassifier{
	rules: []KeywordRule{
		{Label: "Software Engineering", Test: containsAny("java", "spring", "backend", "devops")},
		// "ui/ux" survives only if the caller skips normalization.
		{Label: "Design", Test: containsAny("photoshop", "figma", "ui/ux")},
		{Label: "Data Analyst", Test: containsAny("tableau", "sql", "excel")},
		{Label: "Sales and Marketing", Test: containsAny("marketing", "sales", "seo")},
	},
	defaultLabel: "Data Science",
}

var jobRecommendationRules = &RuleClassifier{
	rules: []KeywordRule{
		{Label: "Backend Developer", Test: both(containsAny("java"), containsAny("spring", "microservices"))},
		{Label: "Business Intelligence Analyst", Test: containsAll("tableau", "sql", "business intelligence")},
		{Label: "UX/UI Designer", Test: containsAll("photoshop", "figma")},
		{Label: "Machine Learning Engineer", Test: containsAny("deep learning", "pytorch", "keras")},
	},
	defaultLabel: "Data Scientist",
}

// RuleBasedModel is the fallback for a slot without trained artifacts.
type RuleBasedModel struct {
	vectorizer Vectorizer
	classifier *RuleClassifier
}

func NewRuleBasedModel(slot Slot) *RuleBasedModel {
	classifier := categoryRules
	if slot.Key == SlotJobRecommendation.Key {
		classifier = jobRecommendationRules
	}
	return &RuleBasedModel{vectorizer: IdentityVectorizer{}, classifier: classifier}
}

func (m *RuleBasedModel) Predict(ctx context.Context, cleanText string) (string, error) {
	features, err := m.vectorizer.Transform(ctx, cleanText)
	if err != nil {
		return "", fmt.Errorf("failed to vectorize text: %w", err)
	}
	labels, err := m.classifier.Predict(ctx, features)
	if err != nil {
		return "", err
	}
	return labels[0], nil
}

func (m *RuleBasedModel) Mode() ModelMode {
	return ModeFallback
}
