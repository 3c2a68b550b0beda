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


package enrich

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/taxonomy"
)

// Config gathers the enrichment settings. DefaultConfig wires the
// built-in French SST taxonomies; callers replace the pieces they load
// from files.
type Config struct {
	// Categories is the weighted category taxonomy. Required.
	Categories *taxonomy.Taxonomy

	// Sectors is the industry-sector taxonomy. Required.
	Sectors *taxonomy.Taxonomy

	// TopKCategories caps the classifier result. Default: 5
	TopKCategories int

	// TopNKeywords caps the extracted keyword list. Default: 15
	TopNKeywords int

	// CandidatePool is the keyword ranking pool size before substring
	// deduplication. Default: 20
	CandidatePool int

	// BoostFactor is the keyword count multiplier for domain terms.
	// Default: 1.5
	BoostFactor float64

	// BoostTerms are the domain terms driving the keyword boost.
	BoostTerms []string

	// ImportanceTerms drive sentence scoring in the summarizer.
	ImportanceTerms []string

	// ScoreTerms drive the domain-term component of the semantic score.
	ScoreTerms []string

	// MinContentBytes is the minimum content length worth enriching;
	// shorter documents are skipped. Default: 100
	MinContentBytes int

	// MaxContentBytes truncates longer content before analysis.
	// Default: 50000
	MaxContentBytes int

	// MinSummarySentences and MaxSummarySentences bound summary size.
	// Defaults: 3 and 5.
	MinSummarySentences int
	MaxSummarySentences int
}

// DefaultConfig returns a Config backed by the built-in French SST
// taxonomies and term lists.
func DefaultConfig() Config {
	return Config{
		Categories:      taxonomy.DefaultCategories(),
		Sectors:         taxonomy.DefaultSectors(),
		BoostTerms:      taxonomy.DefaultBoostTerms(),
		ImportanceTerms: taxonomy.DefaultImportanceTerms(),
		ScoreTerms: []string{
			"sécurité", "prévention", "risque", "formation", "accident", "santé",
		},
	}
}

func (c *Config) applyDefaults() {
	if c.TopKCategories == 0 {
		c.TopKCategories = 5
	}
	if c.TopNKeywords == 0 {
		c.TopNKeywords = 15
	}
	if c.CandidatePool == 0 {
		c.CandidatePool = 20
	}
	if c.BoostFactor == 0 {
		c.BoostFactor = 1.5
	}
	if c.MinContentBytes == 0 {
		c.MinContentBytes = 100
	}
	if c.MaxContentBytes == 0 {
		c.MaxContentBytes = 50000
	}
	if c.MinSummarySentences == 0 {
		c.MinSummarySentences = 3
	}
	if c.MaxSummarySentences == 0 {
		c.MaxSummarySentences = 5
	}
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Enricher runs the full semantic analysis over a document: normalize,
// classify, extract keywords, summarize, detect sectors, score. All
// state is immutable after construction; an Enricher is safe for
// concurrent use.
type Enricher struct {
	cfg        Config
	classifier *Classifier
	extractor  *Extractor
	summarizer *Summarizer
	sectors    *SectorDetector
	logger     *slog.Logger
}

// New creates an Enricher from the configuration.
func New(cfg Config, opts ...Option) (*Enricher, error) {
	cfg.applyDefaults()

	classifier, err := NewClassifier(cfg.Categories, ClassifierConfig{TopK: cfg.TopKCategories})
	if err != nil {
		return nil, fmt.Errorf("category classifier: %w", err)
	}
	sectors, err := NewSectorDetector(cfg.Sectors)
	if err != nil {
		return nil, fmt.Errorf("sector detector: %w", err)
	}

	e := &Enricher{
		cfg:        cfg,
		classifier: classifier,
		sectors:    sectors,
		extractor: NewExtractor(ExtractorConfig{
			BoostTerms:    cfg.BoostTerms,
			BoostFactor:   cfg.BoostFactor,
			CandidatePool: cfg.CandidatePool,
			MaxKeywords:   cfg.TopNKeywords,
		}),
		summarizer: NewSummarizer(SummarizerConfig{
			ImportanceTerms: cfg.ImportanceTerms,
			MinSentences:    cfg.MinSummarySentences,
			MaxSentences:    cfg.MaxSummarySentences,
		}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "enricher")
	return e, nil
}

// Enrich analyses one document and returns its enriched record.
// The input document is not modified.
func (e *Enricher) Enrich(doc core.Document) (*core.EnrichedDocument, error) {
	if err := core.ValidateDocument(&doc); err != nil {
		return nil, err
	}
	if len(doc.Content) < e.cfg.MinContentBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrContentTooShort, len(doc.Content))
	}

	content := doc.Content
	if len(content) > e.cfg.MaxContentBytes {
		content = truncateUTF8(content, e.cfg.MaxContentBytes)
		e.logger.Debug("content truncated before analysis",
			"url", doc.URL, "bytes", len(doc.Content))
	}

	normalized := Normalize(content)

	enriched := &core.EnrichedDocument{
		Document:   doc,
		Categories: e.classifier.Classify(normalized),
		Keywords:   e.extractor.Extract(normalized),
		Summary:    e.summarizer.Summarize(normalized),
		Sectors:    e.sectors.Detect(normalized),
		EnrichedAt: time.Now().UTC(),
	}
	enriched.SemanticScore = SemanticScore(normalized, enriched.Categories, e.cfg.ScoreTerms)
	return enriched, nil
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut]
}
