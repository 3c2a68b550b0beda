// Package enrich implements the semantic analysis stage of the pipeline:
// text normalization, weighted category classification, keyword extraction,
// extractive summarization, industry-sector detection, and the combined
// semantic relevance score.
//
// All analyses are pure functions of their input text and immutable
// configuration, so an Enricher is safe for concurrent use across
// documents without coordination.
package enrich
