package enrich

import (
	"regexp"
	"strings"
)

var (
	newlineRe = regexp.MustCompile(`\n+`)
	// Keep letters, digits, whitespace and the punctuation that matters
	// for sentence segmentation and French quotations.
	specialRe = regexp.MustCompile(`[^\p{L}\p{N}\s.,;:!?«»'-]`)
	spacesRe  = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw extracted text before analysis: newlines are
// folded to spaces, control and symbol characters are removed, runs of
// whitespace collapse to a single space, and the result is trimmed.
// Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = newlineRe.ReplaceAllString(text, " ")
	text = specialRe.ReplaceAllString(text, " ")
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
