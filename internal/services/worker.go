package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/ats-analyzer/internal/models"
)

// BatchItem is the outcome for one file. Exactly one of Result and Err is set.
type BatchItem struct {
	Path   string
	Result *models.AnalysisResult
	Err    error
}

type BatchWorker interface {
	Run(ctx context.Context, paths []string) ([]BatchItem, error)
}

type batchWorker struct {
	analyzer    AnalyzerService
	concurrency int
	log         *zap.Logger
}

func NewBatchWorker(analyzer AnalyzerService, concurrency int, log *zap.Logger) BatchWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &batchWorker{analyzer: analyzer, concurrency: concurrency, log: log}
}

// Run analyzes every path with at most concurrency files in flight. Per-file failures
// are recorded on the item; only cancellation stops the batch.
func (w *batchWorker) Run(ctx context.Context, paths []string) ([]BatchItem, error) {
	w.log.Info("🚀 Starting batch", zap.Int("files", len(paths)), zap.Int("concurrency", w.concurrency))

	items := make([]BatchItem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := w.analyzer.AnalyzeFile(ctx, path)
			items[i] = BatchItem{Path: path, Result: result, Err: err}
			if err != nil {
				w.log.Warn("❌ Failed to analyze file", zap.String("file", path), zap.Error(err))
				return nil
			}

			w.log.Debug("✅ Analyzed file", zap.String("file", path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	w.log.Info("✅ Batch finished", zap.Int("files", len(paths)))
	return items, nil
}

// CollectDocuments lists the supported documents directly inside dir, sorted by name.
func CollectDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupportedDocument(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
