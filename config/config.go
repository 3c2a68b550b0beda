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


package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run-level configuration surface. Everything has a
// working default: an empty file, or no file at all, yields a usable
// local setup with the built-in French SST taxonomies.
type Config struct {
	Taxonomies struct {
		// CategoriesPath and SectorsPath point to YAML taxonomy files.
		// Empty means the built-in defaults.
		CategoriesPath string `yaml:"categories_path"`
		SectorsPath    string `yaml:"sectors_path"`
	} `yaml:"taxonomies"`

	Enrichment struct {
		TopKCategories      int     `yaml:"top_k_categories"`
		TopNKeywords        int     `yaml:"top_n_keywords"`
		BoostFactor         float64 `yaml:"boost_factor"`
		SummaryMinSentences int     `yaml:"summary_min_sentences"`
		SummaryMaxSentences int     `yaml:"summary_max_sentences"`
		MinContentBytes     int     `yaml:"min_content_bytes"`
		MaxContentBytes     int     `yaml:"max_content_bytes"`
		ScoreThreshold      float64 `yaml:"score_threshold"`
	} `yaml:"enrichment"`

	Chunking struct {
		WindowSize int `yaml:"window_size"`
		Overlap    int `yaml:"overlap"`
	} `yaml:"chunking"`

	Embedding struct {
		Host  string `yaml:"host"`
		Model string `yaml:"model"`
	} `yaml:"embedding"`

	Store struct {
		Path      string `yaml:"path"`
		BatchSize int    `yaml:"batch_size"`
	} `yaml:"store"`

	Notification struct {
		LedgerPath string `yaml:"ledger_path"`
		OutputDir  string `yaml:"output_dir"`
	} `yaml:"notification"`

	PoolSize int `yaml:"pool_size"`
}

// Load reads the configuration from a YAML file. An empty path yields
// the defaults. Unset values fall back to their defaults after parsing.
func Load(path string) (*Config, error) {
	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyDefaults(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Enrichment.TopKCategories == 0 {
		config.Enrichment.TopKCategories = 5
	}
	if config.Enrichment.TopNKeywords == 0 {
		config.Enrichment.TopNKeywords = 15
	}
	if config.Enrichment.BoostFactor == 0 {
		config.Enrichment.BoostFactor = 1.5
	}
	if config.Enrichment.SummaryMinSentences == 0 {
		config.Enrichment.SummaryMinSentences = 3
	}
	if config.Enrichment.SummaryMaxSentences == 0 {
		config.Enrichment.SummaryMaxSentences = 5
	}
	if config.Enrichment.MinContentBytes == 0 {
		config.Enrichment.MinContentBytes = 100
	}
	if config.Enrichment.MaxContentBytes == 0 {
		config.Enrichment.MaxContentBytes = 50000
	}

	if config.Chunking.WindowSize == 0 {
		config.Chunking.WindowSize = 300
	}
	if config.Chunking.Overlap == 0 {
		config.Chunking.Overlap = 50
	}

	if config.Embedding.Host == "" {
		config.Embedding.Host = "http://localhost:11434"
	}
	if config.Embedding.Model == "" {
		config.Embedding.Model = "embeddinggemma"
	}

	if config.Store.Path == "" {
		config.Store.Path = "data/vectors"
	}
	if config.Store.BatchSize == 0 {
		config.Store.BatchSize = 100
	}

	if config.Notification.LedgerPath == "" {
		config.Notification.LedgerPath = "output/notification_history.json"
	}
	if config.Notification.OutputDir == "" {
		config.Notification.OutputDir = "output"
	}
}

// Validate checks the configuration for values defaults cannot repair.
func (c *Config) Validate() error {
	if c.Chunking.WindowSize < 1 {
		return fmt.Errorf("chunking.window_size: must be positive, got %d", c.Chunking.WindowSize)
	}
	if c.Chunking.Overlap < 0 || c.Chunking.Overlap >= c.Chunking.WindowSize {
		return fmt.Errorf("chunking.overlap: must be in [0, window_size), got %d", c.Chunking.Overlap)
	}
	if c.Enrichment.ScoreThreshold < 0 || c.Enrichment.ScoreThreshold > 1 {
		return fmt.Errorf("enrichment.score_threshold: must be in [0, 1], got %g", c.Enrichment.ScoreThreshold)
	}
	if c.Enrichment.BoostFactor < 1 {
		return fmt.Errorf("enrichment.boost_factor: must be at least 1, got %g", c.Enrichment.BoostFactor)
	}
	if c.Enrichment.SummaryMinSentences < 1 {
		return fmt.Errorf("enrichment.summary_min_sentences: must be positive, got %d", c.Enrichment.SummaryMinSentences)
	}
	if c.Enrichment.SummaryMaxSentences < c.Enrichment.SummaryMinSentences {
		return fmt.Errorf("enrichment.summary_max_sentences: %d is below summary_min_sentences %d",
			c.Enrichment.SummaryMaxSentences, c.Enrichment.SummaryMinSentences)
	}
	if c.Enrichment.MinContentBytes > c.Enrichment.MaxContentBytes {
		return fmt.Errorf("enrichment.min_content_bytes: %d exceeds max_content_bytes %d",
			c.Enrichment.MinContentBytes, c.Enrichment.MaxContentBytes)
	}
	if c.Store.BatchSize < 1 {
		return fmt.Errorf("store.batch_size: must be positive, got %d", c.Store.BatchSize)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("pool_size: must not be negative, got %d", c.PoolSize)
	}
	return nil
}
