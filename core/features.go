// SPDX-License-Identifier: MIT
// File: features.go
// Role: Feature and label access. Reads on unknown IDs return empty results;
//       UpdateFeatures is the only write path and fails on unknown IDs.

package core

import (
	"fmt"
	"slices"
)

// Features returns a copy of the feature vector of id, or nil if id is unknown.
func (g *Graph) Features(id int) []float64 {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}
	return slices.Clone(g.nodes[pos].Features)
}

// Label returns the label of id and whether the node exists.
func (g *Graph) Label(id int) (int, bool) {
	pos, ok := g.index[id]
	if !ok {
		return 0, false
	}
	return g.nodes[pos].Label, true
}

// UpdateFeatures replaces the feature vector of id with a copy of features.
//
// Errors:
//   - ErrNodeNotFound if id is not registered.
//   - ErrDimensionMismatch if len(features) != Dim().
func (g *Graph) UpdateFeatures(id int, features []float64) error {
	pos, ok := g.index[id]
	if !ok {
		return fmt.Errorf("UpdateFeatures(%d): %w", id, ErrNodeNotFound)
	}
	if len(features) != g.Dim() {
		return fmt.Errorf("UpdateFeatures(%d): got %d values, want %d: %w", id, len(features), g.Dim(), ErrDimensionMismatch)
	}
	g.nodes[pos].Features = slices.Clone(features)

	return nil
}

// HasMissing reports whether id has at least one missing entry.
// Unknown IDs report false.
func (g *Graph) HasMissing(id int) bool {
	pos, ok := g.index[id]
	if !ok {
		return false
	}
	return slices.ContainsFunc(g.nodes[pos].Features, IsMissing)
}

// MissingCount returns the total number of missing entries across all nodes.
func (g *Graph) MissingCount() int {
	total := 0
	for _, n := range g.nodes {
		total += CountMissing(n.Features)
	}
	return total
}

// FeatureSnapshot returns a deep copy of every feature vector keyed by node ID.
// Strategies read from a snapshot and write a batch of updates afterwards so
// that no pass observes values it produced itself.
func (g *Graph) FeatureSnapshot() map[int][]float64 {
	out := make(map[int][]float64, len(g.nodes))
	for _, n := range g.nodes {
		out[n.ID] = slices.Clone(n.Features)
	}
	return out
}
