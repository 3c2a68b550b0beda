package vector

import (
	"context"

	"github.com/poiesic/veilleur/core"
)

// Store persists embedded chunk records and answers nearest-neighbour
// queries over them. Implementations must be thread-safe and support
// concurrent access.
type Store interface {
	// Upsert writes records keyed by their deterministic IDs. Writing a
	// record whose ID already exists replaces it, so re-running a
	// pipeline over the same documents overwrites rather than duplicates.
	Upsert(ctx context.Context, records []core.VectorRecord) error

	// Query returns up to limit records closest to the embedding,
	// ordered by ascending distance. When filters is non-empty, only
	// records whose metadata contains every given key/value pair are
	// considered.
	Query(ctx context.Context, embedding []float32, limit int, filters map[string]string) ([]core.SimilarityMatch, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close closes the store and releases resources.
	Close() error
}
