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


package veilleur

import (
	"context"
	"log/slog"

	"github.com/poiesic/veilleur/ai"
	"github.com/poiesic/veilleur/ai/openai"
	"github.com/poiesic/veilleur/chunk"
	"github.com/poiesic/veilleur/config"
	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/enrich"
	"github.com/poiesic/veilleur/notify"
	"github.com/poiesic/veilleur/pipeline"
	"github.com/poiesic/veilleur/taxonomy"
	"github.com/poiesic/veilleur/vector"
	"github.com/poiesic/veilleur/vector/badger"
)

// Veilleur wires the configured components together: enricher, ledger,
// embedder, vector store, chunk splitter and pipeline.
type Veilleur struct {
	store    vector.Store
	embedder ai.Embedder
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// VeilleurOption configures a Veilleur.
type VeilleurOption func(*veilleurOptions)

type veilleurOptions struct {
	embedder  ai.Embedder
	transport notify.Transport
	logger    *slog.Logger
}

// WithEmbedder replaces the embedding client built from the
// configuration. Useful for tests.
func WithEmbedder(embedder ai.Embedder) VeilleurOption {
	return func(o *veilleurOptions) {
		o.embedder = embedder
	}
}

// WithTransport replaces the notification transport. Default is
// log-only delivery.
func WithTransport(transport notify.Transport) VeilleurOption {
	return func(o *veilleurOptions) {
		o.transport = transport
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) VeilleurOption {
	return func(o *veilleurOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a Veilleur from a configuration. The vector store is
// opened at cfg.Store.Path; Close releases it.
func New(cfg *config.Config, opts ...VeilleurOption) (*Veilleur, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := &veilleurOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger

	enricher, err := newEnricher(cfg, logger)
	if err != nil {
		return nil, err
	}

	splitter, err := chunk.NewSplitter(cfg.Chunking.WindowSize, cfg.Chunking.Overlap)
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(ai.NewConfig(
			ai.WithHost(cfg.Embedding.Host),
			ai.WithModel(cfg.Embedding.Model),
		))
		if err != nil {
			return nil, err
		}
	}

	store, err := badger.NewStore(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	stager, err := pipeline.NewStager(embedder, store, splitter,
		pipeline.StagerConfig{BatchSize: cfg.Store.BatchSize}, logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	ledger := notify.LoadLedger(cfg.Notification.LedgerPath, notify.WithLedgerLogger(logger))

	pipeOpts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithScoreThreshold(cfg.Enrichment.ScoreThreshold),
		pipeline.WithOutputDir(cfg.Notification.OutputDir),
	}
	if cfg.PoolSize > 0 {
		pipeOpts = append(pipeOpts, pipeline.WithPoolSize(cfg.PoolSize))
	}
	if options.transport != nil {
		pipeOpts = append(pipeOpts, pipeline.WithTransport(options.transport))
	}

	pipe, err := pipeline.NewPipeline(enricher, ledger, stager, pipeOpts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Veilleur{
		store:    store,
		embedder: embedder,
		pipeline: pipe,
		logger:   logger,
	}, nil
}

func newEnricher(cfg *config.Config, logger *slog.Logger) (*enrich.Enricher, error) {
	enrichCfg := enrich.DefaultConfig()
	if path := cfg.Taxonomies.CategoriesPath; path != "" {
		categories, err := taxonomy.LoadFile(path)
		if err != nil {
			return nil, err
		}
		enrichCfg.Categories = categories
	}
	if path := cfg.Taxonomies.SectorsPath; path != "" {
		sectors, err := taxonomy.LoadFile(path)
		if err != nil {
			return nil, err
		}
		enrichCfg.Sectors = sectors
	}
	enrichCfg.TopKCategories = cfg.Enrichment.TopKCategories
	enrichCfg.TopNKeywords = cfg.Enrichment.TopNKeywords
	enrichCfg.BoostFactor = cfg.Enrichment.BoostFactor
	enrichCfg.MinSummarySentences = cfg.Enrichment.SummaryMinSentences
	enrichCfg.MaxSummarySentences = cfg.Enrichment.SummaryMaxSentences
	enrichCfg.MinContentBytes = cfg.Enrichment.MinContentBytes
	enrichCfg.MaxContentBytes = cfg.Enrichment.MaxContentBytes

	return enrich.New(enrichCfg, enrich.WithLogger(logger))
}

// Run processes a batch of harvested documents end to end.
func (v *Veilleur) Run(ctx context.Context, docs []core.Document) (*pipeline.RunSummary, error) {
	return v.pipeline.Run(ctx, docs)
}

// Query embeds the text and returns the closest staged chunks.
func (v *Veilleur) Query(ctx context.Context, text string, limit int, filters map[string]string) ([]core.SimilarityMatch, error) {
	embedding, err := v.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	return v.store.Query(ctx, pipeline.NormalizeVector(embedding), limit, filters)
}

// Count returns the number of staged vector records.
func (v *Veilleur) Count(ctx context.Context) (int, error) {
	return v.store.Count(ctx)
}

func (v *Veilleur) Close() error {
	v.pipeline.Release()
	if err := v.store.Close(); err != nil {
		v.logger.Error("error closing vector store", "err", err)
		return err
	}
	return nil
}
