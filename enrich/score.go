package enrich

import "strings"

// Semantic score weighting, combining category hits, length fitness and
// domain-term density into a heuristic relevance measure.
const (
	scoreBase         = 0.5
	scorePerCategory  = 0.1
	scoreLengthBonus  = 0.2
	scorePerTerm      = 0.05
	fitLengthMinBytes = 500
	fitLengthMaxBytes = 5000
)

// SemanticScore computes a relevance score in [0,1] for enriched content:
// a base score, a bonus per identified category, a bonus when the content
// length sits in the useful range, and a bonus per domain term present.
func SemanticScore(content string, categories []string, domainTerms []string) float64 {
	score := scoreBase + float64(len(categories))*scorePerCategory

	if len(content) >= fitLengthMinBytes && len(content) <= fitLengthMaxBytes {
		score += scoreLengthBonus
	}

	lower := strings.ToLower(content)
	for _, term := range domainTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			score += scorePerTerm
		}
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
