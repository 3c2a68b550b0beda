package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Enrichment.TopKCategories)
		assert.Equal(t, 15, cfg.Enrichment.TopNKeywords)
		assert.Equal(t, 1.5, cfg.Enrichment.BoostFactor)
		assert.Equal(t, 3, cfg.Enrichment.SummaryMinSentences)
		assert.Equal(t, 5, cfg.Enrichment.SummaryMaxSentences)
		assert.Equal(t, 100, cfg.Enrichment.MinContentBytes)
		assert.Equal(t, 50000, cfg.Enrichment.MaxContentBytes)
		assert.Equal(t, 300, cfg.Chunking.WindowSize)
		assert.Equal(t, 50, cfg.Chunking.Overlap)
		assert.Equal(t, "http://localhost:11434", cfg.Embedding.Host)
		assert.Equal(t, "embeddinggemma", cfg.Embedding.Model)
		assert.Equal(t, "data/vectors", cfg.Store.Path)
		assert.Equal(t, 100, cfg.Store.BatchSize)
		assert.Equal(t, "output/notification_history.json", cfg.Notification.LedgerPath)
		assert.Equal(t, "output", cfg.Notification.OutputDir)
		assert.Empty(t, cfg.Taxonomies.CategoriesPath)
	})

	t.Run("Default matches Load with no file", func(t *testing.T) {
		loaded, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, loaded, Default())
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "chunking: [not a map")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("partial file keeps defaults elsewhere", func(t *testing.T) {
		path := writeConfig(t, `
chunking:
  window_size: 512
embedding:
  model: nomic-embed-text
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 512, cfg.Chunking.WindowSize)
		assert.Equal(t, "nomic-embed-text", cfg.Embedding.Model)
		assert.Equal(t, 50, cfg.Chunking.Overlap)
		assert.Equal(t, "http://localhost:11434", cfg.Embedding.Host)
	})

	t.Run("enrichment knobs pass through", func(t *testing.T) {
		path := writeConfig(t, `
enrichment:
  boost_factor: 2.0
  summary_min_sentences: 2
  summary_max_sentences: 6
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.Enrichment.BoostFactor)
		assert.Equal(t, 2, cfg.Enrichment.SummaryMinSentences)
		assert.Equal(t, 6, cfg.Enrichment.SummaryMaxSentences)
	})

	t.Run("taxonomy paths pass through", func(t *testing.T) {
		path := writeConfig(t, `
taxonomies:
  categories_path: taxonomies/categories.yaml
  sectors_path: taxonomies/sectors.yaml
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "taxonomies/categories.yaml", cfg.Taxonomies.CategoriesPath)
		assert.Equal(t, "taxonomies/sectors.yaml", cfg.Taxonomies.SectorsPath)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{
			name:    "overlap at window size",
			mutate:  func(c *Config) { c.Chunking.Overlap = c.Chunking.WindowSize },
			message: "chunking.overlap",
		},
		{
			name:    "negative overlap",
			mutate:  func(c *Config) { c.Chunking.Overlap = -1 },
			message: "chunking.overlap",
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Enrichment.ScoreThreshold = 1.5 },
			message: "enrichment.score_threshold",
		},
		{
			name:    "boost factor below one",
			mutate:  func(c *Config) { c.Enrichment.BoostFactor = 0.5 },
			message: "enrichment.boost_factor",
		},
		{
			name:    "negative summary minimum",
			mutate:  func(c *Config) { c.Enrichment.SummaryMinSentences = -1 },
			message: "summary_min_sentences",
		},
		{
			name: "summary max below min",
			mutate: func(c *Config) {
				c.Enrichment.SummaryMinSentences = 6
				c.Enrichment.SummaryMaxSentences = 4
			},
			message: "summary_max_sentences",
		},
		{
			name: "min above max content bytes",
			mutate: func(c *Config) {
				c.Enrichment.MinContentBytes = 100
				c.Enrichment.MaxContentBytes = 50
			},
			message: "min_content_bytes",
		},
		{
			name:    "negative pool size",
			mutate:  func(c *Config) { c.PoolSize = -2 },
			message: "pool_size",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})
}
