package pipeline

import "math"

// NormalizeVector scales v to unit length into a fresh slice. The input
// is never modified. A zero vector has no direction and comes back as a
// fresh zero vector of the same dimension.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sum float64
	for _, val := range v {
		sum += float64(val) * float64(val)
	}

	result := make([]float32, len(v))
	norm := float32(math.Sqrt(sum))
	if norm == 0 {
		return result
	}
	for i, val := range v {
		result[i] = val / norm
	}
	return result
}
