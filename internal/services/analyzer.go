package services

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, raw string) (*models.AnalysisResult, error)
	AnalyzeDocument(ctx context.Context, filename string, r io.ReaderAt, size int64) (*models.AnalysisResult, error)
	AnalyzeFile(ctx context.Context, path string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	engine *ClassificationEngine
	reader DocumentReader
	log    *zap.Logger
}

func NewAnalyzerService(engine *ClassificationEngine, reader DocumentReader, log *zap.Logger) AnalyzerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &analyzerService{engine: engine, reader: reader, log: log}
}

func (a *analyzerService) AnalyzeDocument(ctx context.Context, filename string, r io.ReaderAt, size int64) (*models.AnalysisResult, error) {
	raw, err := a.reader.ReadDocument(filename, r, size)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, raw)
}

func (a *analyzerService) AnalyzeFile(ctx context.Context, path string) (*models.AnalysisResult, error) {
	raw, err := a.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, raw)
}

// Analyze classifies first and stops on a model-error sentinel before any extraction runs.
func (a *analyzerService) Analyze(ctx context.Context, raw string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &InputError{Message: MsgEmptyContent}
	}

	category := a.engine.ClassifyCategory(ctx, raw)
	job := a.engine.RecommendJob(ctx, raw)

	if IsModelError(category) {
		return nil, &ModelMissingError{Slot: SlotCategory.Name, Result: category}
	}
	if IsModelError(job) {
		return nil, &ModelMissingError{Slot: SlotJobRecommendation.Name, Result: job}
	}

	extraction := Extract(raw)
	score := CalculateAtsScore(extraction.Skills)
	tips := GenerateTips(extraction.Name, extraction.Phone, extraction.Email, extraction.Skills, category)

	a.log.Debug("Analysis complete",
		zap.String("category", category),
		zap.String("job", job),
		zap.Int("skills", len(extraction.Skills)),
		zap.Int("ats_score", score),
	)

	return &models.AnalysisResult{
		ClassificationOutcome: models.ClassificationOutcome{Category: category, JobTitle: job},
		ExtractionResult:      extraction,
		AtsScore:              score,
		Tips:                  tips,
	}, nil
}
