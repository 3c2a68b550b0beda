package enrich

import (
	"strings"

	"github.com/poiesic/veilleur/taxonomy"
)

// SectorDetector is a presence-based multi-label tagger: a sector is
// included as soon as any of its keywords appears in the text. No
// scoring, no ranking; results follow taxonomy iteration order and are
// free of duplicates by construction.
type SectorDetector struct {
	tax *taxonomy.Taxonomy
}

// NewSectorDetector creates a detector over a sector taxonomy.
func NewSectorDetector(tax *taxonomy.Taxonomy) (*SectorDetector, error) {
	if tax == nil || tax.Len() == 0 {
		return nil, ErrTaxonomyRequired
	}
	return &SectorDetector{tax: tax}, nil
}

// Detect returns the sectors whose keywords appear in the text
// (case-insensitive substring match).
func (d *SectorDetector) Detect(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var detected []string
	for _, sector := range d.tax.Categories() {
		for _, kw := range sector.Keywords {
			if strings.Contains(lower, kw) {
				detected = append(detected, sector.Name)
				break
			}
		}
	}
	return detected
}
