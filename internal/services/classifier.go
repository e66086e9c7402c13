package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/models"
)

const modelErrorMarker = "Model Error"

// Slot is one independent classification target with its own model.
type Slot struct {
	Key  string
	Name string
}

var (
	SlotCategory          = Slot{Key: "categorization", Name: "Categorization"}
	SlotJobRecommendation = Slot{Key: "job_recommendation", Name: "Job Recommendation"}
)

// ModelErrorSentinel is returned in place of a label when a slot has no usable model.
func (s Slot) ModelErrorSentinel() string {
	return fmt.Sprintf("%s: %s Model Missing", modelErrorMarker, s.Name)
}

func IsModelError(label string) bool {
	return strings.Contains(label, modelErrorMarker)
}

// Features is what a Vectorizer hands to a Classifier. Each pair agrees on which field it fills.
type Features struct {
	Text   string
	Sparse map[int]float64
	Dense  []float32
}

type Vectorizer interface {
	Transform(ctx context.Context, text string) (Features, error)
}

// Classifier returns its predicted labels, best first.
type Classifier interface {
	Predict(ctx context.Context, features Features) ([]string, error)
}

// ModelLoader resolves the trained artifacts of a slot.
type ModelLoader interface {
	LoadVectorizer(ctx context.Context, slot Slot) (Vectorizer, error)
	LoadClassifier(ctx context.Context, slot Slot) (Classifier, error)
}

type ModelMode string

const (
	ModeTrained  ModelMode = "trained"
	ModeFallback ModelMode = "fallback"
)

// Model predicts a label from normalized text. TrainedModel and RuleBasedModel are
// the two implementations; callers never need to know which one they hold.
type Model interface {
	Predict(ctx context.Context, cleanText string) (string, error)
	Mode() ModelMode
}

var errNoPrediction = errors.New("classifier returned no label")

type TrainedModel struct {
	vectorizer Vectorizer
	classifier Classifier
}

func NewTrainedModel(vectorizer Vectorizer, classifier Classifier) *TrainedModel {
	return &TrainedModel{vectorizer: vectorizer, classifier: classifier}
}

func (m *TrainedModel) Predict(ctx context.Context, cleanText string) (string, error) {
	features, err := m.vectorizer.Transform(ctx, cleanText)
	if err != nil {
		return "", fmt.Errorf("failed to vectorize text: %w", err)
	}

	labels, err := m.classifier.Predict(ctx, features)
	if err != nil {
		return "", fmt.Errorf("failed to predict: %w", err)
	}
	if len(labels) == 0 {
		return "", errNoPrediction
	}
	return labels[0], nil
}

func (m *TrainedModel) Mode() ModelMode {
	return ModeTrained
}

// LoadSlotModel attempts to load both trained artifacts of a slot. If either one is
// unavailable the whole slot falls back to its keyword rules; a trained vectorizer is
// never paired with a rule classifier or the other way round.
func LoadSlotModel(ctx context.Context, loader ModelLoader, slot Slot, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	if loader == nil {
		log.Info("No model loader configured, using rule-based model", zap.String("slot", slot.Key))
		return NewRuleBasedModel(slot)
	}

	vectorizer, err := loader.LoadVectorizer(ctx, slot)
	if err != nil {
		log.Error("Vectorizer unavailable, falling back to rule-based model",
			zap.String("slot", slot.Key), zap.Error(err))
		return NewRuleBasedModel(slot)
	}

	classifier, err := loader.LoadClassifier(ctx, slot)
	if err != nil {
		log.Error("Classifier unavailable, falling back to rule-based model",
			zap.String("slot", slot.Key), zap.Error(err))
		return NewRuleBasedModel(slot)
	}

	log.Info("✅ Loaded trained model", zap.String("slot", slot.Key))
	return NewTrainedModel(vectorizer, classifier)
}

// ClassificationEngine holds one model per slot. It is built once at startup and
// shared read-only by every request.
type ClassificationEngine struct {
	category Model
	job      Model
	log      *zap.Logger
}

func NewClassificationEngine(category, job Model, log *zap.Logger) *ClassificationEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &ClassificationEngine{category: category, job: job, log: log}
}

func LoadClassificationEngine(ctx context.Context, loader ModelLoader, log *zap.Logger) *ClassificationEngine {
	return NewClassificationEngine(
		LoadSlotModel(ctx, loader, SlotCategory, log),
		LoadSlotModel(ctx, loader, SlotJobRecommendation, log),
		log,
	)
}

func (e *ClassificationEngine) ClassifyCategory(ctx context.Context, raw string) string {
	return e.predict(ctx, e.category, SlotCategory, raw)
}

func (e *ClassificationEngine) RecommendJob(ctx context.Context, raw string) string {
	return e.predict(ctx, e.job, SlotJobRecommendation, raw)
}

func (e *ClassificationEngine) predict(ctx context.Context, model Model, slot Slot, raw string) string {
	if model == nil {
		return slot.ModelErrorSentinel()
	}

	label, err := model.Predict(ctx, Normalize(raw))
	if err != nil {
		e.log.Error("Prediction failed", zap.String("slot", slot.Key), zap.Error(err))
		return slot.ModelErrorSentinel()
	}
	return label
}

func (e *ClassificationEngine) Status() []models.SlotStatus {
	status := func(slot Slot, model Model) models.SlotStatus {
		mode := "missing"
		if model != nil {
			mode = string(model.Mode())
		}
		return models.SlotStatus{Slot: slot.Key, Mode: mode}
	}
	return []models.SlotStatus{
		status(SlotCategory, e.category),
		status(SlotJobRecommendation, e.job),
	}
}
