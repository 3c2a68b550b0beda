package enrich

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// six sentences of six words each: length heuristic stays at the
// baseline so the tests below exercise position and term scores only.
var summaryInput = []string{
	"Le rapport présente les conclusions annuelles.",
	"Les inspections ont couvert douze chantiers.",
	"Chaque équipe a reçu une formation.",
	"Les machines ont été vérifiées hier.",
	"La sécurité et la prévention priment.",
	"Un bilan complet paraîtra en décembre.",
}

func TestSummarize(t *testing.T) {
	t.Run("short texts returned verbatim", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{})
		for _, text := range []string{
			"",
			"Une seule phrase.",
			"Première phrase. Deuxième phrase.",
			"Une. Deux. Trois.",
		} {
			assert.Equal(t, text, s.Summarize(text))
		}
	})

	t.Run("leading sentences win without terms", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{})
		got := s.Summarize(strings.Join(summaryInput, " "))
		want := strings.Join(summaryInput[:3], " ")
		assert.Equal(t, want, got)
	})

	t.Run("importance terms pull a sentence in", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{
			ImportanceTerms: []string{"sécurité", "prévention"},
		})
		got := s.Summarize(strings.Join(summaryInput, " "))

		assert.Contains(t, got, summaryInput[4])
		assert.NotContains(t, got, summaryInput[2])
	})

	t.Run("summary reads in source order", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{
			ImportanceTerms: []string{"sécurité", "prévention"},
		})
		got := s.Summarize(strings.Join(summaryInput, " "))

		first := strings.Index(got, summaryInput[0])
		second := strings.Index(got, summaryInput[1])
		pulled := strings.Index(got, summaryInput[4])
		require.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, second)
		assert.Less(t, second, pulled)
	})

	t.Run("size capped at MaxSentences", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{})
		var sentences []string
		for i := range 60 {
			sentences = append(sentences,
				fmt.Sprintf("La phrase numéro %d contient assez de mots utiles.", i))
		}
		got := s.Summarize(strings.Join(sentences, " "))
		assert.Len(t, splitSentences(got), 5)
	})

	t.Run("size floored at MinSentences", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{})
		got := s.Summarize(strings.Join(summaryInput[:4], " "))
		assert.Len(t, splitSentences(got), 3)
	})

	t.Run("bounds above sentence count keep whole text", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{MinSentences: 6, MaxSentences: 8})
		text := strings.Join(summaryInput[:5], " ")
		assert.Equal(t, text, s.Summarize(text))
	})

	t.Run("negative bounds fall back to defaults", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{MinSentences: -1, MaxSentences: -1})
		got := s.Summarize(strings.Join(summaryInput, " "))
		assert.Len(t, splitSentences(got), 3)
	})

	t.Run("max below min is raised to min", func(t *testing.T) {
		s := NewSummarizer(SummarizerConfig{MinSentences: 4, MaxSentences: 2})
		got := s.Summarize(strings.Join(summaryInput, " "))
		assert.Len(t, splitSentences(got), 4)
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("terminators followed by space", func(t *testing.T) {
		got := splitSentences("Premier point. Deuxième point! Troisième point? Quatrième")
		assert.Equal(t, []string{
			"Premier point.", "Deuxième point!", "Troisième point?", "Quatrième",
		}, got)
	})

	t.Run("decimal periods do not split", func(t *testing.T) {
		got := splitSentences("La version 3.5 du guide est parue. Elle remplace la 3.4 entière.")
		assert.Len(t, got, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, splitSentences(""))
		assert.Empty(t, splitSentences("   "))
	})
}
