package enrich

import (
	"strings"
	"testing"

	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = "La prévention des risques professionnels est une obligation " +
	"de l'employeur. La réglementation impose des mesures de protection sur les " +
	"chantiers. La formation aux bonnes pratiques est offerte aux travailleurs. " +
	"Les équipes suivent un cours de sensibilisation chaque année."

func sampleDocument() core.Document {
	return core.Document{
		URL:     "https://example.org/guide-prevention",
		Title:   "Guide de prévention",
		Source:  "exemple",
		Content: sampleContent,
	}
}

func TestNew(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		e, err := New(DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, e)
	})

	t.Run("missing category taxonomy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Categories = nil
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrTaxonomyRequired)
	})

	t.Run("missing sector taxonomy", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sectors = taxonomy.New()
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrTaxonomyRequired)
	})
}

func TestEnrich(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)

	t.Run("invalid document rejected", func(t *testing.T) {
		doc := sampleDocument()
		doc.URL = ""
		_, got := e.Enrich(doc)
		assert.ErrorIs(t, got, core.ErrEmptyURL)
	})

	t.Run("short content skipped", func(t *testing.T) {
		doc := sampleDocument()
		doc.Content = "trop court"
		_, got := e.Enrich(doc)
		assert.ErrorIs(t, got, ErrContentTooShort)
	})

	t.Run("full enrichment", func(t *testing.T) {
		enriched, err := e.Enrich(sampleDocument())
		require.NoError(t, err)

		assert.Contains(t, enriched.Categories, "Prévention")
		assert.Contains(t, enriched.Categories, "Réglementation")
		assert.Contains(t, enriched.Categories, "Formation")
		assert.LessOrEqual(t, len(enriched.Categories), 5)

		assert.NotEmpty(t, enriched.Keywords)
		assert.LessOrEqual(t, len(enriched.Keywords), 15)

		assert.NotEmpty(t, enriched.Summary)
		assert.Equal(t, []string{"Construction"}, enriched.Sectors)
		assert.Equal(t, 1.0, enriched.SemanticScore)

		assert.False(t, enriched.EnrichedAt.IsZero())
		assert.Equal(t, sampleDocument(), enriched.Document)
	})

	t.Run("deterministic apart from timestamp", func(t *testing.T) {
		first, err := e.Enrich(sampleDocument())
		require.NoError(t, err)
		second, err := e.Enrich(sampleDocument())
		require.NoError(t, err)

		assert.Equal(t, first.Categories, second.Categories)
		assert.Equal(t, first.Keywords, second.Keywords)
		assert.Equal(t, first.Summary, second.Summary)
		assert.Equal(t, first.Sectors, second.Sectors)
		assert.Equal(t, first.SemanticScore, second.SemanticScore)
	})

	t.Run("long content truncated, not rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxContentBytes = 200
		small, err := New(cfg)
		require.NoError(t, err)

		doc := sampleDocument()
		doc.Content = strings.Repeat(sampleContent, 50)
		enriched, err := small.Enrich(doc)
		require.NoError(t, err)
		assert.NotEmpty(t, enriched.Categories)
	})
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abc", 10))
	assert.Equal(t, "ab", truncateUTF8("abcd", 2))

	// never splits a rune: é is two bytes
	assert.Equal(t, "h", truncateUTF8("héhé", 2))
	assert.Equal(t, "hé", truncateUTF8("héhé", 3))
}
