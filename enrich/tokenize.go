package enrich

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// token is a single word with its original casing preserved, so entity
// candidates can be recognized from capitalization.
type token struct {
	text  string // original case
	lower string
}

// tokenizeSegments splits text into runs of adjacent tokens. A new
// segment starts at every punctuation mark, so phrase candidates never
// span a sentence or clause boundary. Apostrophes split French elisions
// ("l'employeur" becomes "l", "employeur").
func tokenizeSegments(text string) [][]token {
	var segments [][]token
	var current []token
	var word strings.Builder

	flushWord := func() {
		if word.Len() == 0 {
			return
		}
		raw := word.String()
		word.Reset()
		current = append(current, token{text: raw, lower: strings.ToLower(raw)})
	}
	flushSegment := func() {
		flushWord()
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			word.WriteRune(r)
		case unicode.IsSpace(r) || r == '\'':
			flushWord()
		default:
			// Punctuation ends the current phrase segment.
			flushSegment()
		}
	}
	flushSegment()

	return segments
}

// lemma applies a light plural normalization: French plurals in a final
// "s" or "x" fold onto the singular. Anything more aggressive needs a
// real lemmatizer and is not worth the nondeterminism.
func lemma(word string) string {
	if utf8.RuneCountInString(word) > 4 &&
		(strings.HasSuffix(word, "s") || strings.HasSuffix(word, "x")) {
		return word[:len(word)-1]
	}
	return word
}

// isCapitalized reports whether a token starts with an uppercase letter.
func isCapitalized(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// isAcronym reports whether a token is an all-uppercase abbreviation of
// at least two letters, like CNESST, EPI or TMS.
func isAcronym(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// isNumeric reports whether a token is digits only.
func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return s != ""
}
