package similarity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphimpute/core"
)

// Attribute returns the cosine similarity of a and b over the dimensions
// where both are present. No common dimension or a zero effective norm
// gives 0; negative similarity is truncated to 0.
func Attribute(a, b []float64) float64 {
	n := min(len(a), len(b))
	xa := make([]float64, 0, n)
	xb := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if core.IsMissing(a[i]) || core.IsMissing(b[i]) {
			continue
		}
		xa = append(xa, a[i])
		xb = append(xb, b[i])
	}
	if len(xa) == 0 {
		return 0
	}
	return max(0, Cosine(xa, xb))
}

// Cosine returns the cosine similarity of two equal-length vectors, or 0
// when the lengths differ, either vector is empty, or either norm is zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
