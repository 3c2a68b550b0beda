package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/poiesic/veilleur/core"
)

// exportFile is the JSON export layout: a metadata block plus the
// enriched results themselves.
type exportFile struct {
	Metadata exportMetadata           `json:"metadata"`
	Results  []*core.EnrichedDocument `json:"results"`
}

type exportMetadata struct {
	ExecutionDate time.Time `json:"execution_date"`
	TotalResults  int       `json:"total_results"`
}

// ExportResults writes the enriched documents to a timestamp-named JSON
// file in dir, plus a latest.json convenience copy, and returns the
// timestamped path.
func ExportResults(dir string, now time.Time, docs []*core.EnrichedDocument) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(exportFile{
		Metadata: exportMetadata{
			ExecutionDate: now.UTC(),
			TotalResults:  len(docs),
		},
		Results: docs,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("results_%s.json", now.Format("20060102_150405")))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "latest.json"), data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
