package badger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/veilleur/core"
	"github.com/poiesic/veilleur/vector"
)

// Store implements vector.Store on a BadgerDB backend. Queries are a
// brute-force cosine scan over all records, which is the right trade-off
// for a local single-node store holding tens of thousands of chunks.
type Store struct {
	backend *Backend
	logger  *slog.Logger
}

var _ vector.Store = (*Store)(nil)

// NewStore opens a store at the given path.
//
// Returns the vector.Store interface to enforce abstraction.
func NewStore(path string) (vector.Store, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newStore(backend), nil
}

// newStore wraps an open backend; used by NewStore and the test helpers.
func newStore(backend *Backend) *Store {
	return &Store{
		backend: backend,
		logger:  slog.Default().With("component", "vector-store"),
	}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Upsert writes records keyed by their deterministic IDs. An existing
// record with the same ID is replaced.
func (s *Store) Upsert(ctx context.Context, records []core.VectorRecord) error {
	if s.backend.IsClosed() {
		return vector.ErrStoreClosed
	}
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for i := range records {
			value, err := vector.MarshalRecord(&records[i])
			if err != nil {
				return err
			}
			if err := tx.Set(makeRecordKey(records[i].ID), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Query returns up to limit records closest to the embedding, ordered by
// ascending cosine distance. Records missing any requested metadata
// key/value pair are skipped.
func (s *Store) Query(ctx context.Context, embedding []float32, limit int, filters map[string]string) ([]core.SimilarityMatch, error) {
	if s.backend.IsClosed() {
		return nil, vector.ErrStoreClosed
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("%w: empty embedding", vector.ErrInvalidQuery)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", vector.ErrInvalidQuery)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []core.SimilarityMatch

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			id, err := parseRecordKey(item.Key())
			if err != nil {
				return err
			}

			var record *core.VectorRecord
			err = item.Value(func(val []byte) error {
				record, err = vector.UnmarshalRecord(id, val)
				return err
			})
			if err != nil {
				return err
			}

			if len(record.Embedding) == 0 || !matchesFilters(record.Metadata, filters) {
				continue
			}

			matches = append(matches, core.SimilarityMatch{
				ID:       record.ID,
				Distance: cosineDistance(embedding, record.Embedding),
				Document: record.Document,
				Metadata: record.Metadata,
			})
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by distance ascending
	slices.SortFunc(matches, func(a, b core.SimilarityMatch) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.backend.IsClosed() {
		return 0, vector.ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// matchesFilters reports whether metadata contains every filter pair.
func matchesFilters(metadata, filters map[string]string) bool {
	for k, v := range filters {
		if metadata[k] != v {
			return false
		}
	}
	return true
}

// cosineDistance computes 1 - cosine similarity. Zero-norm vectors are
// treated as maximally distant.
func cosineDistance(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return float32(1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)))
}
