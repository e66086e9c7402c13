package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/ats-analyzer/internal/logger"
)

// IngestEntry is one labelled document to embed into the exemplar store.
type IngestEntry struct {
	Path  string
	Slot  string
	Label string
}

type IngestOptions struct {
	// Reset clears points previously ingested from the same file for the same slot.
	Reset         bool
	RetryAttempts int
	RetryDelay    time.Duration
}

type IngestReport struct {
	Succeeded int
	Failed    int
	Chunks    int
}

// ExemplarIngester reads, normalizes, chunks and embeds labelled documents into an
// ExemplarStore. The collection is created lazily and sized from the first embedding.
type ExemplarIngester struct {
	reader   DocumentReader
	chunker  TextChunker
	embedder EmbeddingService
	store    ExemplarStore
	opts     IngestOptions
	log      *zap.Logger

	collectionReady bool
	cleared         map[string]bool
}

func NewExemplarIngester(reader DocumentReader, chunker TextChunker, embedder EmbeddingService, store ExemplarStore, opts IngestOptions, log *zap.Logger) *ExemplarIngester {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.RetryAttempts < 1 {
		opts.RetryAttempts = 1
	}
	return &ExemplarIngester{
		reader:   reader,
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		opts:     opts,
		log:      log,
		cleared:  make(map[string]bool),
	}
}

// SourceKey identifies the file an exemplar came from. The cleaned absolute path keeps
// same-named files in different directories apart.
func SourceKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// Ingest processes every entry. Per-document failures are counted and logged; only a
// collection that cannot be created aborts the run.
func (i *ExemplarIngester) Ingest(ctx context.Context, entries []IngestEntry) (IngestReport, error) {
	var report IngestReport
	for _, entry := range entries {
		stored, err := i.ingestEntry(ctx, entry)
		if err != nil {
			return report, err
		}
		if stored == 0 {
			report.Failed++
			continue
		}
		report.Succeeded++
		report.Chunks += stored
	}
	return report, nil
}

func (i *ExemplarIngester) ingestEntry(ctx context.Context, entry IngestEntry) (int, error) {
	source := SourceKey(entry.Path)
	log := i.log.With(zap.String("source", source), zap.String("slot", entry.Slot), zap.String("label", entry.Label))
	log.Info("📄 Processing document")

	raw, err := i.reader.ReadFile(entry.Path)
	if err != nil {
		log.Error("❌ Failed to read document", zap.Error(err))
		return 0, nil
	}

	chunks := i.chunker.ChunkText(Normalize(raw), DefaultChunkSize, DefaultChunkOverlap)
	if len(chunks) == 0 {
		log.Error("❌ Document has no text after normalization")
		return 0, nil
	}
	log.Info("✂️ Created chunks", zap.Int("chunks", len(chunks)), zap.String("preview", logger.Preview(chunks[0], 80)))

	stored := 0
	for n, chunk := range chunks {
		embedding, err := GenerateEmbeddingWithRetry(ctx, i.embedder, chunk, i.opts.RetryAttempts, i.opts.RetryDelay, log)
		if err != nil {
			log.Error("❌ Failed to embed chunk", zap.Int("chunk", n+1), zap.Error(err))
			continue
		}

		if err := i.prepare(ctx, source, entry.Slot, len(embedding)); err != nil {
			return stored, err
		}

		exemplar := Exemplar{Slot: entry.Slot, Label: entry.Label, Source: source, Text: chunk}
		if err := i.store.UpsertExemplar(ctx, exemplar, embedding); err != nil {
			log.Error("❌ Failed to store chunk", zap.Int("chunk", n+1), zap.Error(err))
			continue
		}
		stored++
	}

	if stored > 0 {
		log.Info("✅ Stored chunks", zap.Int("stored", stored), zap.Int("total", len(chunks)))
	}
	return stored, nil
}

// prepare creates the collection on first use and, when resetting, clears a
// (source, slot) pair once per run so later entries never wipe earlier ones.
func (i *ExemplarIngester) prepare(ctx context.Context, source, slot string, vectorSize int) error {
	if !i.collectionReady {
		if err := i.store.InitCollection(ctx, uint64(vectorSize)); err != nil {
			return fmt.Errorf("failed to initialize collection: %w", err)
		}
		i.collectionReady = true
	}

	key := slot + "\x00" + source
	if !i.opts.Reset || i.cleared[key] {
		return nil
	}
	i.cleared[key] = true
	if err := i.store.DeleteSource(ctx, source, slot); err != nil {
		i.log.Warn("⚠️ Failed to clear previous chunks", zap.String("source", source), zap.String("slot", slot), zap.Error(err))
	}
	return nil
}
