package chunk

import (
	"fmt"

	"github.com/poiesic/veilleur/core"
)

const (
	defaultWindowSize = 300
	defaultOverlap    = 50
)

// Splitter cuts document content into fixed-size overlapping windows.
// Offsets and sizes are measured in runes so multi-byte French text
// never splits mid-character. A Splitter is immutable and safe for
// concurrent use.
type Splitter struct {
	windowSize int
	overlap    int
}

// NewSplitter creates a splitter. Zero values fall back to the defaults
// (window 300, overlap 50). The overlap must be smaller than the window
// or the split could never advance.
func NewSplitter(windowSize, overlap int) (*Splitter, error) {
	if windowSize == 0 {
		windowSize = defaultWindowSize
	}
	if overlap == 0 {
		overlap = defaultOverlap
	}
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidWindow, windowSize)
	}
	if overlap < 0 || overlap >= windowSize {
		return nil, fmt.Errorf("%w: overlap %d with window %d", ErrInvalidOverlap, overlap, windowSize)
	}
	return &Splitter{windowSize: windowSize, overlap: overlap}, nil
}

// Split cuts the document content into chunks. Start offsets advance by
// window minus overlap; the final chunk may be shorter than the window.
// Non-empty content always yields at least one chunk; empty content
// yields none.
func (s *Splitter) Split(doc *core.EnrichedDocument) []core.Chunk {
	runes := []rune(doc.Content)
	length := len(runes)
	if length == 0 {
		return nil
	}

	step := s.windowSize - s.overlap
	var chunks []core.Chunk

	// A window starting past length-overlap would only repeat text the
	// previous chunk already carries.
	for off := 0; off == 0 || off+s.overlap < length; off += step {
		end := off + s.windowSize
		if end > length {
			end = length
		}
		overlap := s.overlap
		if off == 0 {
			overlap = 0
		}
		chunks = append(chunks, core.Chunk{
			DocumentURL: doc.URL,
			Index:       len(chunks),
			Text:        string(runes[off:end]),
			StartOffset: off,
			OverlapLen:  overlap,
		})
		if end == length {
			break
		}
	}
	return chunks
}
