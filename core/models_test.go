package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("la prévention des risques")
		id2 := IDFromContent("la prévention des risques")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent("sécurité")
		id2 := IDFromContent("sécurité au travail")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content produces valid ID", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestChunkID(t *testing.T) {
	url := "https://www.cnesst.gouv.qc.ca/fr/prevention"

	t.Run("deterministic per URL and index", func(t *testing.T) {
		assert.Equal(t, ChunkID(url, 0), ChunkID(url, 0))
		assert.Equal(t, ChunkID(url, 3), ChunkID(url, 3))
	})

	t.Run("distinct across indices", func(t *testing.T) {
		assert.NotEqual(t, ChunkID(url, 0), ChunkID(url, 1))
	})

	t.Run("distinct across documents", func(t *testing.T) {
		assert.NotEqual(t, ChunkID(url, 0), ChunkID(url+"/autre", 0))
	})

	t.Run("matches Chunk.ID", func(t *testing.T) {
		c := Chunk{DocumentURL: url, Index: 2, Text: "texte"}
		assert.Equal(t, ChunkID(url, 2), c.ID())
	})
}

func TestSimilarityMatch_Similarity(t *testing.T) {
	m := SimilarityMatch{Distance: 0}
	assert.InDelta(t, 1.0, float64(m.Similarity()), 1e-6)

	m = SimilarityMatch{Distance: 1}
	assert.InDelta(t, 0.5, float64(m.Similarity()), 1e-6)

	m = SimilarityMatch{Distance: 3}
	assert.InDelta(t, 0.25, float64(m.Similarity()), 1e-6)
}

func TestIDString(t *testing.T) {
	require.Equal(t, "ff", ID(255).String())
	require.Equal(t, "0", ID(0).String())
}
