package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/enrich"
	"github.com/poiesic/veilleur/notify"
)

// Pipeline orchestrates a full run over a batch of harvested documents:
// concurrent enrichment, ledger-deduplicated notification, JSON export,
// and vector-store staging.
type Pipeline struct {
	enricher  *enrich.Enricher
	ledger    *notify.Ledger
	stager    *Stager
	transport notify.Transport
	pool      *ants.Pool
	logger    *slog.Logger

	scoreThreshold float64
	outputDir      string
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent enrichment.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithTransport sets the notification transport.
// Default is a logging transport.
func WithTransport(transport notify.Transport) Option {
	return func(p *Pipeline) error {
		if transport != nil {
			p.transport = transport
		}
		return nil
	}
}

// WithScoreThreshold drops enriched documents scoring below the
// threshold. Default is 0, which keeps everything.
func WithScoreThreshold(threshold float64) Option {
	return func(p *Pipeline) error {
		p.scoreThreshold = threshold
		return nil
	}
}

// WithOutputDir sets the directory for notification artifacts and JSON
// result exports. Empty (the default) disables both.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) error {
		p.outputDir = dir
		return nil
	}
}

// NewPipeline creates a pipeline.
func NewPipeline(enricher *enrich.Enricher, ledger *notify.Ledger, stager *Stager, opts ...Option) (*Pipeline, error) {
	if enricher == nil {
		return nil, ErrEnricherRequired
	}
	if ledger == nil {
		return nil, ErrLedgerRequired
	}
	if stager == nil {
		return nil, ErrStagerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		enricher: enricher,
		ledger:   ledger,
		stager:   stager,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	if p.transport == nil {
		p.transport = notify.NewLogTransport(p.logger)
	}
	p.logger = p.logger.With("component", "pipeline")

	return p, nil
}

// RunSummary reports what a run did.
type RunSummary struct {
	Total         int            // documents received
	Enriched      int            // documents enriched and kept
	Skipped       int            // documents skipped (invalid, too short, below threshold)
	New           int            // documents notified for the first time
	Staged        int            // vector records written
	FailedBatches int            // staging batches dropped after retries
	BySource      map[string]int // enriched documents per source
	Duration      time.Duration
}

// Run processes a batch of harvested documents end to end. Per-document
// enrichment failures are logged and skipped. The ledger is committed
// only for a complete batch: cancellation before enrichment finishes
// aborts the run without recording anything.
func (p *Pipeline) Run(ctx context.Context, docs []core.Document) (*RunSummary, error) {
	start := time.Now()
	summary := &RunSummary{Total: len(docs), BySource: make(map[string]int)}

	results := make([]*core.EnrichedDocument, len(docs))

	var wg sync.WaitGroup
	for i := range docs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return summary, err
		}

		wg.Add(1)
		doc := docs[i]
		slot := &results[i]
		err := p.pool.Submit(func() {
			defer wg.Done()
			enriched, enrichErr := p.enricher.Enrich(doc)
			if enrichErr != nil {
				p.logger.Warn("document skipped", "url", doc.URL, "err", enrichErr)
				return
			}
			if enriched.SemanticScore < p.scoreThreshold {
				p.logger.Debug("document below score threshold",
					"url", doc.URL, "score", enriched.SemanticScore)
				return
			}
			*slot = enriched
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return summary, fmt.Errorf("submit enrichment: %w", err)
		}
	}
	wg.Wait()

	// Compact in input order
	enriched := make([]*core.EnrichedDocument, 0, len(results))
	for _, r := range results {
		if r != nil {
			enriched = append(enriched, r)
		}
	}
	summary.Enriched = len(enriched)
	summary.Skipped = summary.Total - summary.Enriched
	for _, doc := range enriched {
		summary.BySource[doc.Source]++
	}

	p.notifyNew(ctx, enriched, summary)

	if p.outputDir != "" && len(enriched) > 0 {
		if _, err := ExportResults(p.outputDir, time.Now(), enriched); err != nil {
			p.logger.Error("result export failed", "err", err)
		}
	}

	staged, failedBatches, err := p.stager.Stage(ctx, enriched)
	summary.Staged = staged
	summary.FailedBatches = failedBatches
	summary.Duration = time.Since(start)
	if err != nil {
		return summary, err
	}

	p.logger.Info("run finished",
		"total", summary.Total,
		"enriched", summary.Enriched,
		"skipped", summary.Skipped,
		"new", summary.New,
		"staged", summary.Staged,
		"failedBatches", summary.FailedBatches,
		"duration", summary.Duration)
	return summary, nil
}

// notifyNew filters, renders, commits and sends the notification for the
// documents the ledger has never seen. The commit happens before the
// transport fires, so delivery failures never cause re-notification.
func (p *Pipeline) notifyNew(ctx context.Context, enriched []*core.EnrichedDocument, summary *RunSummary) {
	fresh := p.ledger.FilterNew(enriched)
	summary.New = len(fresh)
	if len(fresh) == 0 {
		return
	}

	now := time.Now()
	body := notify.Render(now, fresh)

	if p.outputDir != "" {
		if path, err := notify.WriteArtifact(p.outputDir, now, body); err != nil {
			p.logger.Error("notification artifact write failed", "err", err)
		} else {
			p.logger.Info("notification artifact written", "path", path)
		}
	}

	if err := p.ledger.Commit(fresh); err != nil {
		p.logger.Warn("ledger commit not persisted", "err", err)
	}

	subject := fmt.Sprintf("veilleur - %d nouveaux contenus découverts", len(fresh))
	if err := p.transport.Send(ctx, subject, body); err != nil {
		p.logger.Error("notification delivery failed", "err", err)
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
