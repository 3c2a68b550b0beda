package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/veilleur/ai/mock"
	"github.com/poiesic/veilleur/chunk"
	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/enrich"
	"github.com/poiesic/veilleur/notify"
	badgerstore "github.com/poiesic/veilleur/vector/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipelineContent = "La prévention des risques professionnels est une obligation " +
	"de l'employeur. La réglementation impose des mesures de protection sur les " +
	"chantiers. La formation aux bonnes pratiques est offerte aux travailleurs. " +
	"Les équipes suivent un cours de sensibilisation chaque année."

type captureTransport struct {
	subjects []string
	bodies   []string
}

func (t *captureTransport) Send(ctx context.Context, subject, body string) error {
	t.subjects = append(t.subjects, subject)
	t.bodies = append(t.bodies, body)
	return nil
}

type pipelineFixture struct {
	pipeline   *Pipeline
	ledgerPath string
	outputDir  string
	transport  *captureTransport
}

func newPipelineFixture(t *testing.T, opts ...Option) *pipelineFixture {
	t.Helper()

	enricher, err := enrich.New(enrich.DefaultConfig())
	require.NoError(t, err)

	store, err := badgerstore.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	splitter, err := chunk.NewSplitter(0, 0)
	require.NoError(t, err)

	stager, err := NewStager(mock.NewMockEmbedder(), store, splitter, StagerConfig{}, nil)
	require.NoError(t, err)

	dir := t.TempDir()
	fx := &pipelineFixture{
		ledgerPath: filepath.Join(dir, "ledger.json"),
		outputDir:  filepath.Join(dir, "output"),
		transport:  &captureTransport{},
	}

	ledger := notify.LoadLedger(fx.ledgerPath)
	opts = append([]Option{
		WithPoolSize(2),
		WithTransport(fx.transport),
		WithOutputDir(fx.outputDir),
	}, opts...)

	p, err := NewPipeline(enricher, ledger, stager, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	fx.pipeline = p
	return fx
}

func harvestedDoc(url, source string) core.Document {
	return core.Document{
		URL:     url,
		Title:   "Guide " + source,
		Source:  source,
		Content: pipelineContent,
	}
}

func TestNewPipeline(t *testing.T) {
	fx := newPipelineFixture(t)

	_, err := NewPipeline(nil, notify.LoadLedger(fx.ledgerPath), fx.pipeline.stager)
	assert.ErrorIs(t, err, ErrEnricherRequired)

	_, err = NewPipeline(fx.pipeline.enricher, nil, fx.pipeline.stager)
	assert.ErrorIs(t, err, ErrLedgerRequired)

	_, err = NewPipeline(fx.pipeline.enricher, notify.LoadLedger(fx.ledgerPath), nil)
	assert.ErrorIs(t, err, ErrStagerRequired)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full run", func(t *testing.T) {
		fx := newPipelineFixture(t)
		docs := []core.Document{
			harvestedDoc("https://cnesst/1", "CNESST"),
			harvestedDoc("https://irsst/1", "IRSST"),
			{URL: "https://vide", Source: "CNESST", Content: "trop court"},
		}

		summary, err := fx.pipeline.Run(ctx, docs)
		require.NoError(t, err)

		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 2, summary.Enriched)
		assert.Equal(t, 1, summary.Skipped)
		assert.Equal(t, 2, summary.New)
		assert.Equal(t, 2, summary.Staged)
		assert.Zero(t, summary.FailedBatches)
		assert.Equal(t, map[string]int{"CNESST": 1, "IRSST": 1}, summary.BySource)
		assert.Positive(t, summary.Duration)

		require.Len(t, fx.transport.subjects, 1)
		assert.Equal(t, "veilleur - 2 nouveaux contenus découverts", fx.transport.subjects[0])
		assert.Contains(t, fx.transport.bodies[0], "=== CNESST (1 nouveaux contenus) ===")
		assert.Contains(t, fx.transport.bodies[0], "=== IRSST (1 nouveaux contenus) ===")
	})

	t.Run("artifacts written to output dir", func(t *testing.T) {
		fx := newPipelineFixture(t)
		_, err := fx.pipeline.Run(ctx, []core.Document{harvestedDoc("https://cnesst/1", "CNESST")})
		require.NoError(t, err)

		entries, err := os.ReadDir(fx.outputDir)
		require.NoError(t, err)

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Contains(t, names, "latest.json")

		notifications, err := filepath.Glob(filepath.Join(fx.outputDir, "notification_*.txt"))
		require.NoError(t, err)
		assert.Len(t, notifications, 1)

		results, err := filepath.Glob(filepath.Join(fx.outputDir, "results_*.json"))
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("second run notifies nothing new", func(t *testing.T) {
		fx := newPipelineFixture(t)
		docs := []core.Document{harvestedDoc("https://cnesst/1", "CNESST")}

		summary, err := fx.pipeline.Run(ctx, docs)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.New)

		summary, err = fx.pipeline.Run(ctx, docs)
		require.NoError(t, err)
		assert.Zero(t, summary.New)
		assert.Equal(t, 1, summary.Staged, "staging repeats even for known documents")
		assert.Len(t, fx.transport.subjects, 1, "no second notification")
	})

	t.Run("ledger survives across pipeline instances", func(t *testing.T) {
		fx := newPipelineFixture(t)
		docs := []core.Document{harvestedDoc("https://cnesst/1", "CNESST")}
		_, err := fx.pipeline.Run(ctx, docs)
		require.NoError(t, err)

		reloaded := notify.LoadLedger(fx.ledgerPath)
		assert.Equal(t, 1, reloaded.NotifiedCount())
	})

	t.Run("score threshold filters documents", func(t *testing.T) {
		fx := newPipelineFixture(t, WithScoreThreshold(1.5))
		summary, err := fx.pipeline.Run(ctx, []core.Document{harvestedDoc("https://cnesst/1", "CNESST")})
		require.NoError(t, err)

		assert.Zero(t, summary.Enriched)
		assert.Equal(t, 1, summary.Skipped)
		assert.Zero(t, summary.New)
		assert.Zero(t, summary.Staged)
	})

	t.Run("cancellation aborts before commit", func(t *testing.T) {
		fx := newPipelineFixture(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := fx.pipeline.Run(cancelled, []core.Document{harvestedDoc("https://cnesst/1", "CNESST")})
		assert.ErrorIs(t, err, context.Canceled)

		reloaded := notify.LoadLedger(fx.ledgerPath)
		assert.Zero(t, reloaded.NotifiedCount())
		assert.Empty(t, fx.transport.subjects)
	})

	t.Run("empty batch", func(t *testing.T) {
		fx := newPipelineFixture(t)
		summary, err := fx.pipeline.Run(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, summary.Total)
		assert.Zero(t, summary.New)
		assert.Empty(t, fx.transport.subjects)
	})
}
