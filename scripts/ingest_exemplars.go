package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/config"
	applog "alfredoptarigan/ats-analyzer/internal/logger"
	"alfredoptarigan/ats-analyzer/internal/services"
)

type manifestEntry struct {
	Path  string `json:"path" validate:"required"`
	Slot  string `json:"slot" validate:"required,oneof=categorization job_recommendation"`
	Label string `json:"label" validate:"required"`
}

func loadManifest(path string) ([]services.IngestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var raw []manifestEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	validate := validator.New()
	base := filepath.Dir(path)
	entries := make([]services.IngestEntry, 0, len(raw))
	for i, e := range raw {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("manifest entry %d: %w", i, err)
		}
		if !filepath.IsAbs(e.Path) {
			e.Path = filepath.Join(base, e.Path)
		}
		entries = append(entries, services.IngestEntry{Path: e.Path, Slot: e.Slot, Label: e.Label})
	}
	return entries, nil
}

func main() {
	manifestPath := flag.String("manifest", "./exemplars/manifest.json", "JSON list of {path, slot, label}")
	reset := flag.Bool("reset", true, "delete previously ingested chunks of each source and slot first")
	flag.Parse()

	cfg := config.Load()
	cfg.Log.Service = "ats-ingest"
	zlog, err := applog.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("🚀 Starting exemplar ingestion...", zap.String("manifest", *manifestPath))

	entries, err := loadManifest(*manifestPath)
	if err != nil {
		zlog.Fatal("❌ Invalid manifest", zap.Error(err))
	}

	ctx := context.Background()

	embedder, err := services.NewGeminiEmbedder(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize Gemini", zap.Error(err))
	}

	store, err := services.NewQdrantExemplarStore(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
	}

	ingester := services.NewExemplarIngester(
		services.NewDocumentReader(zlog),
		services.NewTextChunker(),
		embedder,
		store,
		services.IngestOptions{
			Reset:         *reset,
			RetryAttempts: cfg.Worker.RetryMaxAttempts,
			RetryDelay:    cfg.Worker.RetryInitialDelay,
		},
		zlog,
	)

	report, err := ingester.Ingest(ctx, entries)
	if err != nil {
		zlog.Fatal("❌ Ingestion aborted", zap.Error(err))
	}

	zlog.Info("📊 Ingestion summary",
		zap.Int("successful", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("chunks", report.Chunks),
	)

	if report.Failed > 0 {
		zlog.Warn("⚠️ Some documents failed to ingest. Please check the logs above.")
		_ = zlog.Sync()
		os.Exit(1)
	}

	zlog.Info("✅ All exemplars ingested successfully!")
}
