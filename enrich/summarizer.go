package enrich

import (
	"sort"
	"strings"
)

// Sentence position weights. Leading sentences carry the thesis of most
// harvested documents; the closing sentence often restates it.
const (
	positionFirst    = 3.0
	positionEarly    = 2.0 // sentences ranked 2nd and 3rd
	positionLast     = 1.5
	positionBaseline = 1.0

	lengthIdeal    = 1.5 // word count in [idealMinWords, idealMaxWords]
	lengthExtreme  = 0.5 // very short or very long sentences
	lengthBaseline = 1.0

	idealMinWords   = 10
	idealMaxWords   = 30
	extremeMinWords = 5
	extremeMaxWords = 50
)

// SummarizerConfig holds the extractive summarizer settings. Zero values
// fall back to the defaults.
type SummarizerConfig struct {
	// ImportanceTerms are domain terms; each one present in a sentence
	// adds a point to that sentence's score.
	ImportanceTerms []string

	// MinSentences and MaxSentences bound the summary size.
	// Defaults: 3 and 5.
	MinSentences int
	MaxSentences int
}

// Summarizer selects and orders representative sentences using
// positional, term-density and length heuristics. Deterministic: score
// ties preserve original sentence order.
type Summarizer struct {
	cfg SummarizerConfig
}

// NewSummarizer creates an extractive summarizer.
func NewSummarizer(cfg SummarizerConfig) *Summarizer {
	if cfg.MinSentences < 1 {
		cfg.MinSentences = 3
	}
	if cfg.MaxSentences < 1 {
		cfg.MaxSentences = 5
	}
	if cfg.MaxSentences < cfg.MinSentences {
		cfg.MaxSentences = cfg.MinSentences
	}
	terms := make([]string, len(cfg.ImportanceTerms))
	for i, t := range cfg.ImportanceTerms {
		terms[i] = strings.ToLower(t)
	}
	cfg.ImportanceTerms = terms
	return &Summarizer{cfg: cfg}
}

// Summarize returns an extractive summary of the text. Texts of three
// sentences or fewer are returned verbatim. Selected sentences are
// re-sorted by their original position so the summary reads in source
// order, never in score order.
func (s *Summarizer) Summarize(text string) string {
	sentences := splitSentences(text)
	if len(sentences) <= 3 {
		return text
	}

	scores := make([]float64, len(sentences))
	last := len(sentences) - 1
	for i, sentence := range sentences {
		position := positionBaseline
		switch {
		case i == 0:
			position = positionFirst
		case i == last:
			position = positionLast
		case i < 3:
			position = positionEarly
		}

		lower := strings.ToLower(sentence)
		terms := 0.0
		for _, term := range s.cfg.ImportanceTerms {
			if strings.Contains(lower, term) {
				terms++
			}
		}

		words := len(strings.Fields(sentence))
		length := lengthBaseline
		switch {
		case words >= idealMinWords && words <= idealMaxWords:
			length = lengthIdeal
		case words < extremeMinWords || words > extremeMaxWords:
			length = lengthExtreme
		}

		scores[i] = position + terms + length
	}

	size := len(sentences) / 10
	if size < s.cfg.MinSentences {
		size = s.cfg.MinSentences
	}
	if size > s.cfg.MaxSentences {
		size = s.cfg.MaxSentences
	}
	// Bounds above the sentence count select the whole text.
	if size > len(sentences) {
		size = len(sentences)
	}

	// Rank indices by score, stable on original position, then restore
	// document order among the selected sentences.
	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	selected := indices[:size]
	sort.Ints(selected)

	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " ")
}

// sentence terminators; a terminator ends a sentence when followed by
// whitespace or end of text.
var sentenceEnders = map[byte]bool{'.': true, '!': true, '?': true}

// splitSentences segments normalized text into sentences.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !sentenceEnders[text[i]] {
			continue
		}
		if i+1 < len(text) && text[i+1] != ' ' {
			continue
		}
		sentence := strings.TrimSpace(text[start : i+1])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
