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
	"unicode/utf8"
)

// ExtractorConfig holds the knobs for keyword extraction. Zero values
// fall back to the defaults.
type ExtractorConfig struct {
	// BoostTerms are domain terms; a candidate containing one has its
	// count multiplied by BoostFactor, once per matching term.
	BoostTerms []string

	// BoostFactor is the per-term count multiplier. Default: 1.5
	BoostFactor float64

	// CandidatePool is how many ranked candidates enter the substring
	// deduplication step. Default: 20
	CandidatePool int

	// MaxKeywords caps the final result. Default: 15
	MaxKeywords int

	// MinTokenRunes is the minimum token length for single-word
	// candidates; shorter tokens carry little meaning. Default: 4
	MinTokenRunes int

	// MaxPhraseTokens bounds noun-phrase candidate spans. Default: 3
	MaxPhraseTokens int
}

// Extractor derives salient terms from text by merging three candidate
// sources: significant content tokens, entity-like capitalized spans,
// and short noun-phrase windows. Extraction is deterministic for
// identical (text, config).
type Extractor struct {
	cfg ExtractorConfig
}

// NewExtractor creates a keyword extractor.
func NewExtractor(cfg ExtractorConfig) *Extractor {
	if cfg.BoostFactor == 0 {
		cfg.BoostFactor = 1.5
	}
	if cfg.CandidatePool == 0 {
		cfg.CandidatePool = 20
	}
	if cfg.MaxKeywords == 0 {
		cfg.MaxKeywords = 15
	}
	if cfg.MinTokenRunes == 0 {
		cfg.MinTokenRunes = 4
	}
	if cfg.MaxPhraseTokens == 0 {
		cfg.MaxPhraseTokens = 3
	}
	boosts := make([]string, len(cfg.BoostTerms))
	for i, t := range cfg.BoostTerms {
		boosts[i] = strings.ToLower(t)
	}
	cfg.BoostTerms = boosts
	return &Extractor{cfg: cfg}
}

// candidateCounter accumulates candidate counts while remembering first
// appearance order, the deterministic tie-break for equal counts.
type candidateCounter struct {
	counts map[string]float64
	order  []string
}

func newCandidateCounter() *candidateCounter {
	return &candidateCounter{counts: make(map[string]float64)}
}

func (cc *candidateCounter) add(candidate string) {
	if candidate == "" {
		return
	}
	if _, seen := cc.counts[candidate]; !seen {
		cc.order = append(cc.order, candidate)
	}
	cc.counts[candidate]++
}

// Extract returns up to MaxKeywords salient terms, ranked by boosted
// count and pruned of candidates that are strict substrings of another
// surviving candidate.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	segments := tokenizeSegments(text)
	counter := newCandidateCounter()

	for _, seg := range segments {
		e.collectTokens(seg, counter)
		e.collectEntities(seg, counter)
		e.collectPhrases(seg, counter)
	}

	if len(counter.order) == 0 {
		return nil
	}

	// Boost candidates containing domain terms; each matching term
	// multiplies the count once.
	for _, term := range e.cfg.BoostTerms {
		for cand := range counter.counts {
			if strings.Contains(cand, term) {
				counter.counts[cand] *= e.cfg.BoostFactor
			}
		}
	}

	ranked := make([]string, len(counter.order))
	copy(ranked, counter.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counter.counts[ranked[i]] > counter.counts[ranked[j]]
	})
	if len(ranked) > e.cfg.CandidatePool {
		ranked = ranked[:e.cfg.CandidatePool]
	}

	filtered := dropSubstrings(ranked)
	if len(filtered) > e.cfg.MaxKeywords {
		filtered = filtered[:e.cfg.MaxKeywords]
	}
	return filtered
}

// collectTokens adds significant single-word candidates: non-stopword
// alphabetic tokens above the minimum length, folded to a light lemma.
func (e *Extractor) collectTokens(seg []token, counter *candidateCounter) {
	for _, tok := range seg {
		if utf8.RuneCountInString(tok.lower) < e.cfg.MinTokenRunes {
			continue
		}
		if isStopword(tok.lower) || isNumeric(tok.lower) {
			continue
		}
		counter.add(lemma(tok.lower))
	}
}

// collectEntities adds entity-like spans: standalone acronyms and runs
// of two or more capitalized words, which is as close as substring
// heuristics get to organization and product names.
func (e *Extractor) collectEntities(seg []token, counter *candidateCounter) {
	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		if end-runStart >= 2 {
			parts := make([]string, 0, end-runStart)
			for _, tok := range seg[runStart:end] {
				parts = append(parts, tok.lower)
			}
			counter.add(strings.Join(parts, " "))
		}
		runStart = -1
	}

	for i, tok := range seg {
		if isAcronym(tok.text) {
			counter.add(tok.lower)
		}
		if isCapitalized(tok.text) && !isAcronym(tok.text) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(seg))
}

// collectPhrases adds noun-phrase style windows: 2..MaxPhraseTokens
// adjacent tokens that start and end on a non-stopword and are not
// composed entirely of stopwords.
func (e *Extractor) collectPhrases(seg []token, counter *candidateCounter) {
	for width := 2; width <= e.cfg.MaxPhraseTokens; width++ {
		for start := 0; start+width <= len(seg); start++ {
			window := seg[start : start+width]
			if isStopword(window[0].lower) || isStopword(window[width-1].lower) {
				continue
			}
			significant := false
			parts := make([]string, width)
			for i, tok := range window {
				if isNumeric(tok.lower) {
					significant = false
					break
				}
				parts[i] = tok.lower
				if !isStopword(tok.lower) && utf8.RuneCountInString(tok.lower) >= e.cfg.MinTokenRunes {
					significant = true
				}
			}
			if !significant {
				continue
			}
			counter.add(strings.Join(parts, " "))
		}
	}
}

// dropSubstrings removes any candidate that is a strict substring of
// another candidate in the list, keeping the longer, more specific term
// ("sécurité au travail" wins over "sécurité").
func dropSubstrings(candidates []string) []string {
	var kept []string
	for _, cand := range candidates {
		redundant := false
		for _, other := range candidates {
			if cand != other && strings.Contains(other, cand) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, cand)
		}
	}
	return kept
}
