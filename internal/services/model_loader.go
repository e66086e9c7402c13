package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/config"
)

const tfidfSchema = `{
  "type": "object",
  "required": ["kind", "vocabulary", "idf", "ngram_range"],
  "properties": {
    "kind": {"enum": ["tfidf"]},
    "vocabulary": {"type": "object", "additionalProperties": {"type": "integer", "minimum": 0}},
    "idf": {"type": "array", "items": {"type": "number"}},
    "ngram_range": {"type": "array", "items": {"type": "integer", "minimum": 1}, "minItems": 2, "maxItems": 2},
    "sublinear_tf": {"type": "boolean"}
  }
}`

const linearSchema = `{
  "type": "object",
  "required": ["kind", "classes", "coef", "intercept"],
  "properties": {
    "kind": {"enum": ["linear"]},
    "classes": {"type": "array", "items": {"type": "string"}, "minItems": 2},
    "coef": {"type": "array", "items": {"type": "array", "items": {"type": "number"}}, "minItems": 1},
    "intercept": {"type": "array", "items": {"type": "number"}, "minItems": 1}
  }
}`

var (
	tfidfSchemaLoader  = gojsonschema.NewStringLoader(tfidfSchema)
	linearSchemaLoader = gojsonschema.NewStringLoader(linearSchema)
)

// ArtifactLoader reads per-slot model artifacts from a directory.
type ArtifactLoader struct {
	dir string
}

func NewArtifactLoader(dir string) *ArtifactLoader {
	return &ArtifactLoader{dir: dir}
}

func VectorizerArtifactName(slot Slot) string {
	return fmt.Sprintf("tfidf_vectorizer_%s.json", slot.Key)
}

func ClassifierArtifactName(slot Slot) string {
	return fmt.Sprintf("classifier_%s.json", slot.Key)
}

func (l *ArtifactLoader) LoadVectorizer(_ context.Context, slot Slot) (Vectorizer, error) {
	var vectorizer TfidfVectorizer
	if err := l.readArtifact(VectorizerArtifactName(slot), tfidfSchemaLoader, &vectorizer); err != nil {
		return nil, err
	}
	if err := vectorizer.validate(); err != nil {
		return nil, fmt.Errorf("invalid vectorizer artifact: %w", err)
	}
	return &vectorizer, nil
}

func (l *ArtifactLoader) LoadClassifier(_ context.Context, slot Slot) (Classifier, error) {
	var classifier LinearClassifier
	if err := l.readArtifact(ClassifierArtifactName(slot), linearSchemaLoader, &classifier); err != nil {
		return nil, err
	}
	if err := classifier.validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier artifact: %w", err)
	}
	return &classifier, nil
}

func (l *ArtifactLoader) readArtifact(name string, schema gojsonschema.JSONLoader, out any) error {
	path := filepath.Join(l.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate artifact %s: %w", path, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return fmt.Errorf("artifact %s does not match schema: %s", path, strings.Join(problems, "; "))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	return nil
}

type LoaderOptions struct {
	ModelsDir    string
	GeminiAPIKey string
	EmbedModel   string
	QdrantURL    string
	QdrantAPIKey string
	Collection   string
	TopK         int
}

// NewModelLoader returns the loader for a backend. The rules backend has no loader, so
// every slot starts on its keyword rules. A vector backend whose clients cannot be
// built still returns a loader; its slots fall back when loading is attempted.
func NewModelLoader(ctx context.Context, backend string, opts LoaderOptions, log *zap.Logger) (ModelLoader, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch backend {
	case config.BackendRules:
		return nil, nil
	case config.BackendArtifact:
		return NewArtifactLoader(opts.ModelsDir), nil
	case config.BackendVector:
		embedder, err := NewGeminiEmbedder(ctx, opts.GeminiAPIKey, opts.EmbedModel)
		if err != nil {
			log.Warn("⚠️ Embedding service unavailable", zap.Error(err))
			embedder = nil
		}
		store, err := NewQdrantExemplarStore(opts.QdrantURL, opts.QdrantAPIKey, opts.Collection, log)
		if err != nil {
			log.Warn("⚠️ Exemplar store unavailable", zap.Error(err))
			store = nil
		}
		return NewVectorLoader(embedder, store, opts.TopK), nil
	default:
		return nil, fmt.Errorf("unknown model backend %q", backend)
	}
}
