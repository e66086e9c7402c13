package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// Exemplar is a labelled résumé excerpt used by the nearest-exemplar classifier.
type Exemplar struct {
	Slot   string
	Label  string
	Source string
	Text   string
}

type SearchResult struct {
	ID     string
	Score  float32
	Slot   string
	Label  string
	Source string
	Text   string
}

type ExemplarStore interface {
	InitCollection(ctx context.Context, vectorSize uint64) error
	UpsertExemplar(ctx context.Context, exemplar Exemplar, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, slot string, limit int) ([]SearchResult, error)
	CountExemplars(ctx context.Context, slot string) (uint64, error)
	DeleteSource(ctx context.Context, source, slot string) error
}

type qdrantExemplarStore struct {
	client         *qdrant.Client
	collectionName string
	log            *zap.Logger
}

func NewQdrantExemplarStore(urlStr, apiKey, collectionName string, log *zap.Logger) (ExemplarStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	// gRPC port, not the REST one in the URL.
	port := 6334
	if p := parsed.Port(); p != "" && p != "6333" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &qdrantExemplarStore{client: client, collectionName: collectionName, log: log}, nil
}

func (q *qdrantExemplarStore) InitCollection(ctx context.Context, vectorSize uint64) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("✅ Collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

func (q *qdrantExemplarStore) UpsertExemplar(ctx context.Context, exemplar Exemplar, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(uuid.NewString()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"slot":   exemplar.Slot,
			"label":  exemplar.Label,
			"source": exemplar.Source,
			"text":   exemplar.Text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert exemplar: %w", err)
	}
	return nil
}

func slotFilter(slot string) *qdrant.Filter {
	if slot == "" {
		return nil
	}
	return &qdrant.Filter{
		Must: []*qdrant.Condition{qdrant.NewMatch("slot", slot)},
	}
}

func (q *qdrantExemplarStore) SearchSimilar(ctx context.Context, queryEmbedding []float32, slot string, limit int) ([]SearchResult, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         slotFilter(slot),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		payload := point.Payload
		results = append(results, SearchResult{
			ID:     point.GetId().GetUuid(),
			Score:  point.Score,
			Slot:   payloadString(payload, "slot"),
			Label:  payloadString(payload, "label"),
			Source: payloadString(payload, "source"),
			Text:   payloadString(payload, "text"),
		})
	}
	return results, nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if value, ok := payload[key]; ok {
		return value.GetStringValue()
	}
	return ""
}

func (q *qdrantExemplarStore) CountExemplars(ctx context.Context, slot string) (uint64, error) {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return 0, fmt.Errorf("failed to check collection: %w", err)
	}
	if !exists {
		return 0, nil
	}

	count, err := q.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: q.collectionName,
		Filter:         slotFilter(slot),
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count exemplars: %w", err)
	}
	return count, nil
}

// DeleteSource removes the exemplars ingested from a source file for one slot.
func (q *qdrantExemplarStore) DeleteSource(ctx context.Context, source, slot string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatch("source", source),
						qdrant.NewMatch("slot", slot),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete exemplars: %w", err)
	}
	return nil
}
