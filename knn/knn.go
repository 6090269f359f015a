// SPDX-License-Identifier: MIT
// File: knn.go
// Role: Bounded-BFS k-nearest-neighbor imputation with iterative convergence.

package knn

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/graphimpute/bfs"
	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/impute"
)

// Defaults returns the default parameters.
func Defaults() impute.Params {
	return impute.Params{
		impute.KeyK:             15,
		impute.KeyMaxIterations: 10,
	}
}

// phase names the steps of a run for logging.
type phase int

const (
	phaseCollect phase = iota
	phaseDistances
	phaseIterate
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseCollect:
		return "collect"
	case phaseDistances:
		return "distances"
	case phaseIterate:
		return "iterate"
	case phaseDone:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Strategy is the k-NN imputer.
type Strategy struct {
	impute.Base

	// comparison sets from the last distances phase
	paths map[int][]int
	stats impute.FillStats
}

var _ impute.Strategy = (*Strategy)(nil)

// New returns a k-NN strategy over g.
func New(g *core.Graph, opts ...impute.Option) *Strategy {
	return &Strategy{Base: impute.NewBase(g, Defaults(), opts...)}
}

// Reset restores defaults and clears cached comparison sets.
func (s *Strategy) Reset() {
	s.ResetParams()
	s.paths = nil
	s.stats = impute.FillStats{}
}

// Stats reports the outcome of the last Run.
func (s *Strategy) Stats() impute.FillStats { return s.stats }

// Run fills missing values of the owned graph.
func (s *Strategy) Run() error {
	if s.Graph == nil {
		return impute.ErrGraphNil
	}
	k, maxIter := 0, 0
	if err := s.Params.Ints(map[string]*int{impute.KeyK: &k, impute.KeyMaxIterations: &maxIter}); err != nil {
		return fmt.Errorf("knn: %w", err)
	}
	if err := impute.Positive(impute.KeyK, k); err != nil {
		return fmt.Errorf("knn: %w", err)
	}
	if err := impute.Positive(impute.KeyMaxIterations, maxIter); err != nil {
		return fmt.Errorf("knn: %w", err)
	}

	s.stats = impute.FillStats{}
	nodes := s.Graph.Nodes()
	s.Log.Debug("knn phase", "phase", phaseCollect, "nodes", len(nodes))

	s.Log.Debug("knn phase", "phase", phaseDistances, "k", k)
	if err := s.calcPaths(nodes, k); err != nil {
		return err
	}

	s.Log.Debug("knn phase", "phase", phaseIterate, "maxIterations", maxIter)
	pending, err := s.estimateFeatures(nodes, maxIter)
	if err != nil {
		return err
	}

	s.stats.Remaining = s.Graph.MissingCount()
	if pending > 0 {
		s.Log.Warn("max iteration depth reached, could not fill all features",
			"iterations", s.stats.Iterations, "nodes", pending, "values", s.stats.Remaining)
	}
	s.Log.Debug("knn phase", "phase", phaseDone, "filled", s.stats.Filled)

	return nil
}

// calcPaths stores, per node, up to k discovered nodes ordered by
// (distance, id), keeping only those within k hops.
func (s *Strategy) calcPaths(nodes []int, k int) error {
	s.paths = make(map[int][]int, len(nodes))
	for _, id := range nodes {
		res, err := bfs.BFS(s.Graph, id, bfs.WithMaxDiscovered(k))
		if err != nil {
			return fmt.Errorf("knn: paths from %d: %w", id, err)
		}
		near := slices.DeleteFunc(res.Discovered(), func(v int) bool { return res.Depth[v] > k })
		if len(near) > k {
			near = near[:k]
		}
		s.paths[id] = near
	}
	return nil
}

// estimateFeatures iterates until no node is pending or maxIter passes ran,
// and returns the number of nodes still pending.
func (s *Strategy) estimateFeatures(nodes []int, maxIter int) (int, error) {
	pending := slices.Clone(nodes)
	for len(pending) > 0 && s.stats.Iterations < maxIter {
		s.stats.Iterations++
		snap := s.Graph.FeatureSnapshot()
		updates := make(map[int][]float64)
		next := pending[:0:0]

		for _, id := range pending {
			feats := slices.Clone(snap[id])
			if n := impute.MeanFill(feats, s.paths[id], snap); n > 0 {
				updates[id] = feats
				s.stats.Filled += n
			}
			if core.CountMissing(feats) > 0 {
				next = append(next, id)
			}
		}

		for id, feats := range updates {
			if err := s.Graph.UpdateFeatures(id, feats); err != nil {
				return 0, fmt.Errorf("knn: %w", err)
			}
		}
		pending = next
	}

	return len(pending), nil
}
