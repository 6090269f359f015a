// Package builder provides the attribute and label policies applied to every
// node a constructor adds.
package builder

import (
	"fmt"
	"math/rand"
)

// FeatureFn produces the attribute vector of node id. It must return exactly
// dim values and be deterministic for a given RNG state. rng may be nil.
type FeatureFn func(id, dim int, rng *rand.Rand) []float64

// LabelFn produces the class label of node id.
type LabelFn func(id int) int

// IndexFeatureFn sets every entry to float64(id). Never uses rng.
func IndexFeatureFn(id, dim int, _ *rand.Rand) []float64 {
	out := make([]float64, dim)
	for i := range out {
		out[i] = float64(id)
	}
	return out
}

// ConstantFeatureFn returns a FeatureFn yielding value in every entry.
func ConstantFeatureFn(value float64) FeatureFn {
	return func(_, dim int, _ *rand.Rand) []float64 {
		out := make([]float64, dim)
		for i := range out {
			out[i] = value
		}
		return out
	}
}

// UniformFeatureFn returns a FeatureFn sampling each entry from U[min,max).
// Panics if max < min. With a nil rng it falls back to IndexFeatureFn.
func UniformFeatureFn(min, max float64) FeatureFn {
	if max < min {
		panic(fmt.Sprintf("UniformFeatureFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(id, dim int, rng *rand.Rand) []float64 {
		if rng == nil {
			return IndexFeatureFn(id, dim, nil)
		}
		out := make([]float64, dim)
		for i := range out {
			out[i] = min + rng.Float64()*(max-min)
		}
		return out
	}
}

// NormalFeatureFn returns a FeatureFn sampling each entry from
// N(mean, stddev). Panics if stddev < 0. With a nil rng it falls back to
// IndexFeatureFn.
func NormalFeatureFn(mean, stddev float64) FeatureFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalFeatureFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(id, dim int, rng *rand.Rand) []float64 {
		if rng == nil {
			return IndexFeatureFn(id, dim, nil)
		}
		out := make([]float64, dim)
		for i := range out {
			out[i] = rng.NormFloat64()*stddev + mean
		}
		return out
	}
}

// ParityLabelFn labels even IDs 0 and odd IDs 1.
func ParityLabelFn(id int) int { return id % 2 }

// ConstantLabelFn returns a LabelFn yielding label for every node.
func ConstantLabelFn(label int) LabelFn {
	return func(int) int { return label }
}
