package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// EmbeddingVectorizer turns text into a dense embedding.
type EmbeddingVectorizer struct {
	embedder EmbeddingService
}

func (v *EmbeddingVectorizer) Transform(ctx context.Context, text string) (Features, error) {
	embedding, err := v.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return Features{}, err
	}
	return Features{Text: text, Dense: embedding}, nil
}

// NearestExemplarClassifier votes over the top-K most similar exemplars of one slot,
// weighting each vote by its similarity score.
type NearestExemplarClassifier struct {
	store ExemplarStore
	slot  string
	topK  int
}

func (c *NearestExemplarClassifier) Predict(ctx context.Context, features Features) ([]string, error) {
	if features.Dense == nil {
		return nil, errors.New("nearest-exemplar classifier requires dense features")
	}

	neighbours, err := c.store.SearchSimilar(ctx, features.Dense, c.slot, c.topK)
	if err != nil {
		return nil, err
	}

	votes := make(map[string]float64)
	var labels []string
	for _, n := range neighbours {
		if n.Label == "" {
			continue
		}
		if _, seen := votes[n.Label]; !seen {
			labels = append(labels, n.Label)
		}
		votes[n.Label] += float64(n.Score)
	}
	if len(labels) == 0 {
		return nil, errNoPrediction
	}

	// Ties keep the label of the closest exemplar first.
	sort.SliceStable(labels, func(i, j int) bool {
		return votes[labels[i]] > votes[labels[j]]
	})
	return labels, nil
}

// VectorLoader serves slots from embedded exemplars in the vector store.
type VectorLoader struct {
	embedder EmbeddingService
	store    ExemplarStore
	topK     int
}

func NewVectorLoader(embedder EmbeddingService, store ExemplarStore, topK int) *VectorLoader {
	return &VectorLoader{embedder: embedder, store: store, topK: topK}
}

func (l *VectorLoader) LoadVectorizer(_ context.Context, _ Slot) (Vectorizer, error) {
	if l.embedder == nil {
		return nil, errors.New("no embedding service configured")
	}
	return &EmbeddingVectorizer{embedder: l.embedder}, nil
}

func (l *VectorLoader) LoadClassifier(ctx context.Context, slot Slot) (Classifier, error) {
	if l.store == nil {
		return nil, errors.New("no exemplar store configured")
	}

	count, err := l.store.CountExemplars(ctx, slot.Key)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("no exemplars stored for slot %s", slot.Key)
	}

	return &NearestExemplarClassifier{store: l.store, slot: slot.Key, topK: l.topK}, nil
}
