package impute

import (
	"fmt"
	"math"
)

// Parameter names.
const (
	KeyK                  = "k"
	KeyMaxIterations      = "maxIterations"
	KeySeed               = "seed"
	KeyTau                = "tau"
	KeyEmbeddingDims      = "embeddingDimensions"
	KeyNumEpochs          = "numEpochs"
	KeyWindowSize         = "windowSize"
	KeyNumNegativeSamples = "numNegativeSamples"
	KeyLearningRate       = "learningRate"
	KeySampleSize         = "sampleSize"
	KeyFusionCoefficient  = "fusionCoefficient"
	KeyCoverDepth         = "coverDepth"
	KeyWalkLength         = "walkLength"
	KeyWalksPerNode       = "walksPerNode"
	KeyExpansionRounds    = "expansionRounds"
	KeyMaxSubgraphSize    = "maxSubgraphSize"
)

// Params maps parameter names to numeric values.
type Params map[string]float64

// Float returns p[key] or def when absent.
func (p Params) Float(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Int returns p[key] truncated to int, or def when absent. Values that are
// not finite or not whole numbers are reported as ErrInvalidParam.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s=%v is not an integer", ErrInvalidParam, key, v)
	}
	return int(v), nil
}

// Ints resolves several integer keys at once into the given targets.
func (p Params) Ints(dst map[string]*int) error {
	for key, ptr := range dst {
		v, err := p.Int(key, *ptr)
		if err != nil {
			return err
		}
		*ptr = v
	}
	return nil
}

// Positive returns an ErrInvalidParam unless v > 0.
func Positive(key string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s=%d must be positive", ErrInvalidParam, key, v)
	}
	return nil
}

// NonNegative returns an ErrInvalidParam unless v >= 0.
func NonNegative(key string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %s=%d must not be negative", ErrInvalidParam, key, v)
	}
	return nil
}
