package impute

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/graphimpute/skipgram"
)

// EmbeddingDefaults returns the defaults shared by embedding strategies.
// sampleSize 0 searches every embedding instead of a random pool.
func EmbeddingDefaults() Params {
	return Params{
		KeyTau:                0.5,
		KeyEmbeddingDims:      128,
		KeyNumEpochs:          5,
		KeyWindowSize:         5,
		KeyNumNegativeSamples: 5,
		KeyLearningRate:       0.025,
		KeyK:                  5,
		KeySampleSize:         0,
		KeyMaxIterations:      10,
		KeySeed:               0,
	}
}

// WithExtra returns a copy of p extended by extra.
func (p Params) WithExtra(extra Params) Params {
	out := maps.Clone(p)
	maps.Copy(out, extra)
	return out
}

// EmbeddingSettings is the validated view of the embedding parameters.
type EmbeddingSettings struct {
	SkipGram skipgram.Config
	Tau      float64
	Fill     FillConfig
	Seed     int64
}

// Embedding resolves and validates the embedding parameters of p.
func (p Params) Embedding() (EmbeddingSettings, error) {
	d := EmbeddingDefaults()
	s := EmbeddingSettings{
		Tau:  p.Float(KeyTau, d[KeyTau]),
		Seed: p.Seed(),
	}
	s.SkipGram.LearningRate = p.Float(KeyLearningRate, d[KeyLearningRate])

	err := p.Ints(map[string]*int{
		KeyEmbeddingDims:      &s.SkipGram.Dim,
		KeyNumEpochs:          &s.SkipGram.Epochs,
		KeyWindowSize:         &s.SkipGram.Window,
		KeyNumNegativeSamples: &s.SkipGram.Negatives,
		KeyK:                  &s.Fill.K,
		KeySampleSize:         &s.Fill.SampleSize,
		KeyMaxIterations:      &s.Fill.MaxIterations,
	})
	if err != nil {
		return s, err
	}
	if err := s.SkipGram.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	if err := s.Fill.Validate(); err != nil {
		return s, err
	}
	if !(s.Tau > 0 && s.Tau <= 1) {
		return s, fmt.Errorf("%w: %s=%v must be in (0,1]", ErrInvalidParam, KeyTau, s.Tau)
	}
	return s, nil
}
