package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length output", func(t *testing.T) {
		got := NormalizeVector([]float32{3, 4})
		assert.InDelta(t, 0.6, got[0], 1e-6)
		assert.InDelta(t, 0.8, got[1], 1e-6)

		var sum float64
		for _, val := range got {
			sum += float64(val) * float64(val)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-6)
	})

	t.Run("input untouched", func(t *testing.T) {
		in := []float32{3, 4}
		NormalizeVector(in)
		assert.Equal(t, []float32{3, 4}, in)
	})

	t.Run("zero vector", func(t *testing.T) {
		assert.Equal(t, []float32{0, 0, 0}, NormalizeVector([]float32{0, 0, 0}))
	})

	t.Run("empty vector", func(t *testing.T) {
		assert.Empty(t, NormalizeVector(nil))
	})
}
