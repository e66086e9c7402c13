package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// maxEmbeddingInput keeps requests under the embedding model's token window.
const maxEmbeddingInput = 40000

type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiEmbedder struct {
	client     *genai.Client
	embedModel string
}

func NewGeminiEmbedder(ctx context.Context, apiKey, embedModel string) (EmbeddingService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{client: client, embedModel: embedModel}, nil
}

func (g *geminiEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if len(text) > maxEmbeddingInput {
		text = text[:maxEmbeddingInput]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, errors.New("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateEmbeddingWithRetry retries transient embedding failures with exponential backoff.
func GenerateEmbeddingWithRetry(ctx context.Context, embedder EmbeddingService, text string, attempts int, delay time.Duration, log *zap.Logger) ([]float32, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var embedding []float32
	err := retry.Do(
		func() error {
			var err error
			embedding, err = embedder.GenerateEmbedding(ctx, text)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("⚠️ Embedding attempt failed, retrying", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attempts, err)
	}
	return embedding, nil
}
