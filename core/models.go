package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for derived entities such as vector records.
// It is generated using content-based hashing so repeated runs over the
// same input produce the same IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkID generates a deterministic ID for a chunk of a document.
// The ID depends only on the document URL and the chunk index, so a
// repeated run over the same document overwrites rather than duplicates
// vector-store entries.
func ChunkID(documentURL string, index int) ID {
	return IDFromContent(documentURL + "#" + strconv.Itoa(index))
}

// String renders the ID as a hexadecimal string, the form used as the
// vector-store record key.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 16)
}

// Document is a harvested document as delivered by the fetch collaborator.
// It is read-only input to the enrichment pipeline; the URL is its identifier.
type Document struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// EnrichedDocument is a Document plus the semantic analysis results.
// It is created once per document by the enrichment stage and is
// immutable thereafter.
type EnrichedDocument struct {
	Document
	Categories    []string  `json:"categories"` // ordered, distinct, highest score first
	Keywords      []string  `json:"keywords"`   // ordered, distinct, no mutual substrings
	Summary       string    `json:"summary"`
	Sectors       []string  `json:"sectors"`        // set semantics, taxonomy order
	SemanticScore float64   `json:"semantic_score"` // clamped to [0,1]
	EnrichedAt    time.Time `json:"enriched_at"`
}

// Chunk is a bounded, possibly overlapping window over an enriched
// document's content. Chunks are ephemeral and regenerated each run.
type Chunk struct {
	DocumentURL string
	Index       int // 0-based, monotonic per document
	Text        string
	StartOffset int // rune offset into the document content
	OverlapLen  int // runes shared with the previous chunk
}

// ID returns the deterministic identifier for this chunk.
func (c Chunk) ID() ID {
	return ChunkID(c.DocumentURL, c.Index)
}

// VectorRecord is a chunk staged for the vector store: an embedding plus
// metadata drawn from the owning enriched document.
type VectorRecord struct {
	ID        ID
	Embedding []float32
	Document  string // chunk text
	Metadata  map[string]string
}

// SimilarityMatch is a vector-store query result.
type SimilarityMatch struct {
	ID       ID
	Distance float32
	Document string
	Metadata map[string]string
}

// Similarity derives a similarity score in (0,1] from the match distance.
func (m SimilarityMatch) Similarity() float32 {
	return 1 / (1 + m.Distance)
}
