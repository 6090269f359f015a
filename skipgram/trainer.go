// SPDX-License-Identifier: MIT
// File: trainer.go
// Role: Skip-gram with negative sampling over a shared embedding table.

package skipgram

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidConfig is returned for non-positive sizes or learning rate.
var ErrInvalidConfig = errors.New("skipgram: invalid configuration")

// Config holds the training hyper-parameters.
type Config struct {
	Dim          int
	Epochs       int
	Window       int
	Negatives    int
	LearningRate float64
}

// DefaultConfig mirrors the usual word2vec/node2vec settings.
func DefaultConfig() Config {
	return Config{Dim: 128, Epochs: 5, Window: 5, Negatives: 5, LearningRate: 0.025}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Dim <= 0:
		return fmt.Errorf("%w: Dim=%d", ErrInvalidConfig, c.Dim)
	case c.Epochs < 0:
		return fmt.Errorf("%w: Epochs=%d", ErrInvalidConfig, c.Epochs)
	case c.Window <= 0:
		return fmt.Errorf("%w: Window=%d", ErrInvalidConfig, c.Window)
	case c.Negatives < 0:
		return fmt.Errorf("%w: Negatives=%d", ErrInvalidConfig, c.Negatives)
	case !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 0):
		return fmt.Errorf("%w: LearningRate=%v", ErrInvalidConfig, c.LearningRate)
	}
	return nil
}

// Trainer runs skip-gram passes. It is not safe for concurrent use.
type Trainer struct {
	cfg Config
	rng *rand.Rand
	tmp []float64
}

// New validates cfg and returns a Trainer drawing from rng.
func New(cfg Config, rng *rand.Rand) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &Trainer{cfg: cfg, rng: rng, tmp: make([]float64, cfg.Dim)}, nil
}

// Config returns the trainer's configuration.
func (t *Trainer) Config() Config { return t.cfg }

// Init returns a fresh table with one small random vector per id.
func (t *Trainer) Init(ids []int) map[int][]float64 {
	emb := make(map[int][]float64, len(ids))
	for _, id := range ids {
		if _, ok := emb[id]; !ok {
			emb[id] = t.newVector()
		}
	}
	return emb
}

func (t *Trainer) newVector() []float64 {
	v := make([]float64, t.cfg.Dim)
	for i := range v {
		v[i] = (t.rng.Float64() - 0.5) / float64(t.cfg.Dim)
	}
	return v
}

// vector returns emb[id], creating it (or replacing a wrong-length one).
func (t *Trainer) vector(emb map[int][]float64, id int) []float64 {
	v, ok := emb[id]
	if !ok || len(v) != t.cfg.Dim {
		v = t.newVector()
		emb[id] = v
	}
	return v
}

// Train runs Epochs passes over sequences, drawing negatives from
// population, and returns the number of gradient steps taken.
func (t *Trainer) Train(emb map[int][]float64, sequences [][]int, population []int) int {
	steps := 0
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		for _, seq := range sequences {
			for i, target := range seq {
				lo, hi := max(0, i-t.cfg.Window), min(len(seq)-1, i+t.cfg.Window)
				for j := lo; j <= hi; j++ {
					if j == i {
						continue
					}
					t.update(emb, target, seq[j], 1)
					steps++
					for n := 0; n < t.cfg.Negatives; n++ {
						neg, ok := drawNegative(population, target, t.rng)
						if !ok {
							break
						}
						t.update(emb, target, neg, 0)
						steps++
					}
				}
			}
		}
	}
	return steps
}

// drawNegative samples uniformly from population until it hits a node other
// than target. ok is false when no such node exists.
func drawNegative(population []int, target int, rng *rand.Rand) (int, bool) {
	if len(population) == 0 {
		return 0, false
	}
	for attempt := 0; attempt < 32; attempt++ {
		if c := population[rng.Intn(len(population))]; c != target {
			return c, true
		}
	}
	// dense fallback for populations dominated by target
	others := 0
	for _, c := range population {
		if c != target {
			others++
		}
	}
	if others == 0 {
		return 0, false
	}
	pick := rng.Intn(others)
	for _, c := range population {
		if c == target {
			continue
		}
		if pick == 0 {
			return c, true
		}
		pick--
	}
	return 0, false
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// update applies one symmetric gradient step to target and context. A pair
// whose two ends are the same node is a no-op; the step is still counted.
func (t *Trainer) update(emb map[int][]float64, target, context int, label float64) {
	tv := t.vector(emb, target)
	if target == context {
		return
	}
	cv := t.vector(emb, context)

	g := (label - sigmoid(floats.Dot(tv, cv))) * t.cfg.LearningRate
	copy(t.tmp, tv)
	floats.AddScaled(tv, g, cv)
	floats.AddScaled(cv, g, t.tmp)
}

// Normalize scales every non-zero vector to unit L2 norm.
func Normalize(emb map[int][]float64) {
	for _, v := range emb {
		if n := floats.Norm(v, 2); n > 0 {
			floats.Scale(1/n, v)
		}
	}
}
