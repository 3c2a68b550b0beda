package veilleur

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/veilleur/ai/mock"
	"github.com/poiesic/veilleur/config"
	"github.com/poiesic/veilleur/core"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Store.Path = filepath.Join(dir, "vectors")
	cfg.Notification.LedgerPath = filepath.Join(dir, "ledger.json")
	cfg.Notification.OutputDir = filepath.Join(dir, "output")
	cfg.PoolSize = 2
	return cfg
}

func testDocument(url string) core.Document {
	return core.Document{
		URL:    url,
		Title:  "Nouvelle norme de sécurité",
		Source: "cnesst",
		Content: strings.Repeat(
			"La prévention des accidents sur les chantiers de construction exige "+
				"une formation en sécurité pour chaque travailleur. ", 5),
	}
}

func TestNew(t *testing.T) {
	t.Run("builds from config", func(t *testing.T) {
		cfg := testConfig(t)
		v, err := New(cfg, WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NoError(t, v.Close())
	})

	t.Run("missing taxonomy file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Taxonomies.CategoriesPath = filepath.Join(t.TempDir(), "absent.yaml")
		_, err := New(cfg, WithEmbedder(mock.NewMockEmbedder()))
		assert.Error(t, err)
	})
}

func TestSummaryBoundsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Enrichment.SummaryMinSentences = 6
	cfg.Enrichment.SummaryMaxSentences = 8
	require.NoError(t, cfg.Validate())

	v, err := New(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer v.Close()

	var sentences []string
	for i := range 20 {
		sentences = append(sentences,
			fmt.Sprintf("La consigne numéro %d encadre le travail en hauteur sur les chantiers.", i))
	}
	doc := core.Document{
		URL:     "https://cnesst.example/consignes",
		Title:   "Consignes",
		Source:  "cnesst",
		Content: strings.Join(sentences, " "),
	}

	summary, err := v.Run(context.Background(), []core.Document{doc})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Enriched)

	data, err := os.ReadFile(filepath.Join(cfg.Notification.OutputDir, "latest.json"))
	require.NoError(t, err)
	var export struct {
		Results []core.EnrichedDocument `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &export))
	require.Len(t, export.Results, 1)
	assert.Equal(t, 6, strings.Count(export.Results[0].Summary, "."))
}

func TestRunAndQuery(t *testing.T) {
	cfg := testConfig(t)
	v, err := New(cfg, WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer v.Close()

	ctx := context.Background()
	summary, err := v.Run(ctx, []core.Document{
		testDocument("https://cnesst.example/a"),
		testDocument("https://cnesst.example/b"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Enriched)
	assert.Equal(t, 2, summary.New)
	assert.Greater(t, summary.Staged, 0)

	count, err := v.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary.Staged, count)

	matches, err := v.Query(ctx, "formation en sécurité sur les chantiers", 3, nil)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), 3)
	for _, m := range matches {
		assert.NotEmpty(t, m.Document)
		assert.Contains(t, m.Metadata, "url")
	}

	filtered, err := v.Query(ctx, "sécurité", 10, map[string]string{"url": "https://cnesst.example/a"})
	require.NoError(t, err)
	for _, m := range filtered {
		assert.Equal(t, "https://cnesst.example/a", m.Metadata["url"])
	}
}
