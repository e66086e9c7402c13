// Package main provides the ats command line tool for analysing résumés without the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/config"
	applog "alfredoptarigan/ats-analyzer/internal/logger"
	"alfredoptarigan/ats-analyzer/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "ats",
	Short: "ATS resume analyzer",
	Long:  "Classify resumes, extract contact details and skills, and score them the way an applicant tracking system would.",
}

var (
	backendOverride string
	verbose         bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&backendOverride, "backend", "", "Model backend: artifact, vector or rules (overrides MODEL_BACKEND)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log model loading and per-file progress")
}

// setup loads configuration and builds the analyzer shared by every subcommand.
func setup(ctx context.Context) (*config.Config, services.AnalyzerService, *zap.Logger, error) {
	cfg := config.Load()
	if backendOverride != "" {
		cfg.Models.Backend = backendOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	log := zap.NewNop()
	if verbose {
		var err error
		cfg.Log.Service = "ats"
		cfg.Log.Output = "stderr"
		log, err = applog.New(cfg.Log)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	loader, err := services.NewModelLoader(ctx, cfg.Models.Backend, services.LoaderOptions{
		ModelsDir:    cfg.Models.Dir,
		GeminiAPIKey: cfg.Gemini.APIKey,
		EmbedModel:   cfg.Gemini.EmbedModel,
		QdrantURL:    cfg.Qdrant.URL,
		QdrantAPIKey: cfg.Qdrant.APIKey,
		Collection:   cfg.Qdrant.Collection,
		TopK:         cfg.Qdrant.TopK,
	}, log)
	if err != nil {
		return nil, nil, nil, err
	}

	engine := services.LoadClassificationEngine(ctx, loader, log)
	return cfg, services.NewAnalyzerService(engine, services.NewDocumentReader(log), log), log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
