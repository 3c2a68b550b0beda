// Package pipeline orchestrates the full processing of harvested
// documents: concurrent semantic enrichment over a bounded worker pool,
// ledger-deduplicated notification, JSON result export, and batched
// embedding staging into the vector store.
//
// Per-document enrichment failures and failed staging batches are logged
// and skipped; they never abort the run. Cancellation is honored between
// documents and between staging batches.
package pipeline
