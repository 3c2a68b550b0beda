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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/veilleur"
	"github.com/poiesic/veilleur/config"
	"github.com/poiesic/veilleur/core"
)

func main() {
	app := &cli.App{
		Name:  "veilleur",
		Usage: "Semantic enrichment pipeline for French occupational health and safety content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Enrich harvested documents, notify new content and stage embeddings",
				ArgsUsage: "<documents.json>",
				Action:    runCommand,
			},
			{
				Name:      "query",
				Usage:     "Search staged chunks by semantic similarity",
				ArgsUsage: "<text>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of matches",
						Value:   5,
					},
					&cli.StringSliceFlag{
						Name:  "filter",
						Usage: "Metadata filter as key=value (repeatable)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// documentsFile matches the harvested-results export: either a bare
// array of documents or an object with a results list.
type documentsFile struct {
	Results []core.Document `json:"results"`
}

func readDocuments(path string) ([]core.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents file: %w", err)
	}

	var docs []core.Document
	if err := json.Unmarshal(data, &docs); err == nil {
		return docs, nil
	}

	var file documentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse documents file %s: %w", path, err)
	}
	return file.Results, nil
}

func runCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one documents file argument")
	}

	docs, err := readDocuments(c.Args().First())
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	v, err := veilleur.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer v.Close()

	summary, err := v.Run(context.Background(), docs)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Documents: %d\n", summary.Total)
	fmt.Fprintf(os.Stderr, "Enriched: %d (skipped %d)\n", summary.Enriched, summary.Skipped)
	fmt.Fprintf(os.Stderr, "New since last run: %d\n", summary.New)
	fmt.Fprintf(os.Stderr, "Staged chunks: %d (failed batches %d)\n", summary.Staged, summary.FailedBatches)
	for source, n := range summary.BySource {
		fmt.Fprintf(os.Stderr, "  %s: %d\n", source, n)
	}
	fmt.Fprintf(os.Stderr, "Duration: %s\n", summary.Duration.Round(time.Millisecond))

	return nil
}

func queryCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one query text argument")
	}

	filters, err := parseFilters(c.StringSlice("filter"))
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	v, err := veilleur.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer v.Close()

	matches, err := v.Query(context.Background(), c.Args().First(), c.Int("limit"), filters)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for i, m := range matches {
		fmt.Printf("%d. [%.3f] %s\n", i+1, m.Similarity(), m.Metadata["url"])
		if title := m.Metadata["title"]; title != "" {
			fmt.Printf("   %s\n", title)
		}
		fmt.Printf("   %s\n", truncate(m.Document, 180))
	}

	return nil
}

func parseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
