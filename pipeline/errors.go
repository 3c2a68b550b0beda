package pipeline

import "errors"

var (
	// ErrEnricherRequired is returned when an enricher is not provided.
	ErrEnricherRequired = errors.New("enricher required")

	// ErrLedgerRequired is returned when a notification ledger is not provided.
	ErrLedgerRequired = errors.New("ledger required")

	// ErrStagerRequired is returned when an embedding stager is not provided.
	ErrStagerRequired = errors.New("stager required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrStoreRequired is returned when a vector store is not provided.
	ErrStoreRequired = errors.New("vector store required")

	// ErrSplitterRequired is returned when a chunk splitter is not provided.
	ErrSplitterRequired = errors.New("splitter required")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
