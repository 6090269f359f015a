// SPDX-License-Identifier: MIT
// File: fill.go
// Role: Fill missing attributes from the nodes closest in embedding space.
// Passes read a feature snapshot and write their updates as one batch.

package impute

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/similarity"
)

// FillConfig controls FillFromEmbeddings.
type FillConfig struct {
	K             int // similar nodes consulted per node
	SampleSize    int // random candidate pool per node; 0 searches all embeddings
	MaxIterations int // passes over the still-missing nodes
}

// Validate reports invalid fields as ErrInvalidParam.
func (c FillConfig) Validate() error {
	if err := Positive(KeyK, c.K); err != nil {
		return err
	}
	if err := NonNegative(KeySampleSize, c.SampleSize); err != nil {
		return err
	}
	return Positive(KeyMaxIterations, c.MaxIterations)
}

// FillStats summarizes a fill.
type FillStats struct {
	Filled     int // values written
	Remaining  int // values still missing afterwards
	Iterations int // passes performed
}

// FillFromEmbeddings replaces missing values of g with the mean of the same
// dimension over the K nodes most similar in emb that observe it.
//
// Nodes without an embedding, or whose neighbors in embedding space never
// observe a dimension, keep it missing. Passes repeat while they make
// progress, up to MaxIterations; a filled value can inform later passes.
func FillFromEmbeddings(g *core.Graph, emb map[int][]float64, cfg FillConfig, rng *rand.Rand, log *slog.Logger) (FillStats, error) {
	var st FillStats
	if g == nil {
		return st, ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return st, err
	}
	if log == nil {
		log = slog.Default()
	}

	var work []int
	for _, id := range g.Nodes() {
		if g.HasMissing(id) {
			work = append(work, id)
		}
	}

	for len(work) > 0 && st.Iterations < cfg.MaxIterations {
		st.Iterations++
		snap := g.FeatureSnapshot()
		updates := make(map[int][]float64)
		var next []int

		for _, id := range work {
			feats := slices.Clone(snap[id])
			filled := MeanFill(feats, neighborsOf(id, emb, cfg, rng), snap)
			if filled > 0 {
				updates[id] = feats
				st.Filled += filled
			}
			if core.CountMissing(feats) > 0 {
				next = append(next, id)
			}
		}

		for id, feats := range updates {
			if err := g.UpdateFeatures(id, feats); err != nil {
				return st, fmt.Errorf("impute: fill node %d: %w", id, err)
			}
		}
		work = next
		if len(updates) == 0 {
			break
		}
	}

	st.Remaining = g.MissingCount()
	if len(work) > 0 {
		log.Warn("could not fill all features", "iterations", st.Iterations, "nodes", len(work), "values", st.Remaining)
	}
	return st, nil
}

// neighborsOf returns the IDs of the nodes most similar to id.
func neighborsOf(id int, emb map[int][]float64, cfg FillConfig, rng *rand.Rand) []int {
	q, ok := emb[id]
	if !ok {
		return nil
	}
	pool := emb
	if cfg.SampleSize > 0 {
		pool = similarity.Sample(emb, cfg.SampleSize, rng)
	}
	matches := similarity.TopK(pool, q, cfg.K+1)
	out := make([]int, 0, cfg.K)
	for _, m := range matches {
		if m.ID != id && len(out) < cfg.K {
			out = append(out, m.ID)
		}
	}
	return out
}

// MeanFill writes, into feats, the mean of each missing dimension over the
// donors observing it in snap, and returns the number of values written.
// Dimensions no donor observes stay missing.
func MeanFill(feats []float64, donors []int, snap map[int][]float64) int {
	filled := 0
	vals := make([]float64, 0, len(donors))
	for d, v := range feats {
		if !core.IsMissing(v) {
			continue
		}
		vals = vals[:0]
		for _, nb := range donors {
			if f := snap[nb]; d < len(f) && !core.IsMissing(f[d]) {
				vals = append(vals, f[d])
			}
		}
		if len(vals) > 0 {
			feats[d] = stat.Mean(vals, nil)
			filled++
		}
	}
	return filled
}
