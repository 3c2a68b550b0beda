// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/veilleur/ai"
	"github.com/poiesic/veilleur/chunk"
	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/vector"
)

const (
	defaultBatchSize      = 100
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// StagerConfig holds the staging settings. Zero values fall back to the
// defaults.
type StagerConfig struct {
	// BatchSize is how many chunks are embedded and upserted per call.
	// Default: 100
	BatchSize int

	// MaxRetries is the attempt cap for embedding and upsert calls.
	// Default: 3
	MaxRetries int

	// RetryBaseDelay is the base delay for exponential backoff.
	// Default: 500ms
	RetryBaseDelay time.Duration
}

// Stager turns enriched documents into embedded vector records: chunk,
// embed in batches, normalize, upsert. A failed batch is logged and
// skipped; the rest of the run continues.
type Stager struct {
	embedder ai.Embedder
	store    vector.Store
	splitter *chunk.Splitter
	cfg      StagerConfig
	logger   *slog.Logger
}

// NewStager creates a stager.
func NewStager(embedder ai.Embedder, store vector.Store, splitter *chunk.Splitter, cfg StagerConfig, logger *slog.Logger) (*Stager, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if splitter == nil {
		return nil, ErrSplitterRequired
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Stager{
		embedder: embedder,
		store:    store,
		splitter: splitter,
		cfg:      cfg,
		logger:   logger.With("component", "stager"),
	}, nil
}

// Stage chunks the documents and upserts embedded records batch by
// batch. It returns the number of records written and the number of
// batches that failed after retries.
func (s *Stager) Stage(ctx context.Context, docs []*core.EnrichedDocument) (staged, failedBatches int, err error) {
	var chunks []core.Chunk
	var metas []map[string]string
	for _, doc := range docs {
		for _, c := range s.splitter.Split(doc) {
			chunks = append(chunks, c)
			metas = append(metas, chunkMetadata(doc, c))
		}
	}
	if len(chunks) == 0 {
		return 0, 0, nil
	}

	for start := 0; start < len(chunks); start += s.cfg.BatchSize {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return staged, failedBatches, ctxErr
		}

		end := start + s.cfg.BatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		if batchErr := s.stageBatch(ctx, chunks[start:end], metas[start:end]); batchErr != nil {
			failedBatches++
			s.logger.Error("batch staging failed, skipping",
				"from", start, "to", end, "err", batchErr)
			continue
		}
		staged += end - start
	}

	s.logger.Info("staging finished",
		"chunks", len(chunks), "staged", staged, "failedBatches", failedBatches)
	return staged, failedBatches, nil
}

// stageBatch embeds one batch and upserts it, each step with bounded
// retries.
func (s *Stager) stageBatch(ctx context.Context, chunks []core.Chunk, metas []map[string]string) error {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = s.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, s.cfg.MaxRetries, s.cfg.RetryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", s.cfg.MaxRetries, err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	records := make([]core.VectorRecord, len(chunks))
	for i, c := range chunks {
		records[i] = core.VectorRecord{
			ID:        c.ID(),
			Embedding: NormalizeVector(embeddings[i]),
			Document:  c.Text,
			Metadata:  metas[i],
		}
	}

	err = RetryWithBackoff(ctx, func() error {
		return s.store.Upsert(ctx, records)
	}, s.cfg.MaxRetries, s.cfg.RetryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to upsert records after %d attempts: %w", s.cfg.MaxRetries, err)
	}
	return nil
}

// chunkMetadata builds the per-record metadata carried into the vector
// store, so query results can be displayed and filtered without loading
// the source document.
func chunkMetadata(doc *core.EnrichedDocument, c core.Chunk) map[string]string {
	meta := map[string]string{
		"url":            doc.URL,
		"source":         doc.Source,
		"title":          doc.Title,
		"chunk_index":    strconv.Itoa(c.Index),
		"semantic_score": strconv.FormatFloat(doc.SemanticScore, 'f', 2, 64),
	}
	if doc.ContentType != "" {
		meta["content_type"] = doc.ContentType
	}
	if len(doc.Categories) > 0 {
		meta["categories"] = strings.Join(doc.Categories, ", ")
	}
	if len(doc.Keywords) > 0 {
		meta["keywords"] = strings.Join(doc.Keywords, ", ")
	}
	return meta
}
