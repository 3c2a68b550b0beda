package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/veilleur/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportResults(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)
	docs := []*core.EnrichedDocument{
		{
			Document:      core.Document{URL: "https://a", Title: "Titre A", Source: "src"},
			Categories:    []string{"Prévention"},
			SemanticScore: 0.7,
		},
	}

	path, err := ExportResults(dir, now, docs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "results_20260826_150000.json"), path)

	var exported struct {
		Metadata struct {
			TotalResults int `json:"total_results"`
		} `json:"metadata"`
		Results []struct {
			URL        string   `json:"url"`
			Categories []string `json:"categories"`
		} `json:"results"`
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, 1, exported.Metadata.TotalResults)
	require.Len(t, exported.Results, 1)
	assert.Equal(t, "https://a", exported.Results[0].URL)
	assert.Equal(t, []string{"Prévention"}, exported.Results[0].Categories)

	latest, err := os.ReadFile(filepath.Join(dir, "latest.json"))
	require.NoError(t, err)
	assert.Equal(t, data, latest)
}
