package enrich

import "errors"

var (
	// ErrTaxonomyRequired is returned when a component is built without a taxonomy.
	ErrTaxonomyRequired = errors.New("taxonomy required")

	// ErrContentTooShort is returned when a document carries less content
	// than the configured minimum. The document is skipped, not failed.
	ErrContentTooShort = errors.New("content too short for enrichment")
)
