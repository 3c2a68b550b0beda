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
	"sort"
	"strings"

	"github.com/poiesic/veilleur/taxonomy"
)

// ClassifierConfig holds the scoring weights and the result cap for the
// category classifier. Zero values fall back to the defaults.
type ClassifierConfig struct {
	// PresenceWeight multiplies the number of distinct keywords found.
	// Default: 2.0
	PresenceWeight float64

	// FrequencyWeight multiplies the total keyword occurrence count.
	// Default: 0.5
	FrequencyWeight float64

	// TopK caps the number of categories returned. Default: 5
	TopK int
}

// Classifier scores text against a weighted keyword taxonomy and returns
// the highest ranking category labels. Classification is deterministic
// for identical (text, taxonomy, config).
type Classifier struct {
	tax *taxonomy.Taxonomy
	cfg ClassifierConfig
}

// NewClassifier creates a classifier over the given taxonomy.
func NewClassifier(tax *taxonomy.Taxonomy, cfg ClassifierConfig) (*Classifier, error) {
	if tax == nil || tax.Len() == 0 {
		return nil, ErrTaxonomyRequired
	}
	if cfg.PresenceWeight == 0 {
		cfg.PresenceWeight = 2.0
	}
	if cfg.FrequencyWeight == 0 {
		cfg.FrequencyWeight = 0.5
	}
	if cfg.TopK == 0 {
		cfg.TopK = 5
	}
	return &Classifier{tax: tax, cfg: cfg}, nil
}

// Classify returns up to TopK category names sorted by descending score,
// ties broken by the category's position in the taxonomy. Categories
// whose keywords never appear are excluded. Empty text yields an empty
// result, not an error.
func (c *Classifier) Classify(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	type scored struct {
		name  string
		score float64
	}
	var results []scored

	// Categories are visited in taxonomy insertion order, so a stable
	// sort preserves that order for equal scores.
	for _, cat := range c.tax.Categories() {
		presence := 0
		frequency := 0
		for _, kw := range cat.Keywords {
			n := strings.Count(lower, kw)
			if n > 0 {
				presence++
				frequency += n
			}
		}
		if presence == 0 {
			continue
		}
		score := float64(presence)*c.cfg.PresenceWeight + float64(frequency)*c.cfg.FrequencyWeight
		results = append(results, scored{name: cat.Name, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if len(results) > c.cfg.TopK {
		results = results[:c.cfg.TopK]
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}
