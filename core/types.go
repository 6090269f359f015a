// SPDX-License-Identifier: MIT
// Package core defines the Node, Edge, EdgeStore and Graph types together with
// the sentinel errors and the missing-value sentinel helpers.
//
// Errors:
//
//	ErrNegativeID        - an edge or node references an ID below zero.
//	ErrLoopNotAllowed    - an edge connects a node to itself.
//	ErrNodeNotFound      - a write path referenced an unknown node.
//	ErrDuplicateNode     - AddNode was called twice for the same ID.
//	ErrDimensionMismatch - a feature vector does not match the graph dimension.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates that an ID below zero was supplied.
	ErrNegativeID = errors.New("core: negative node ID")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an update referenced a node that does not exist.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates a node ID was registered twice.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDimensionMismatch indicates a feature vector of the wrong length.
	ErrDimensionMismatch = errors.New("core: feature dimension mismatch")
)

// Missing returns the sentinel stored in feature vectors for absent values.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is the missing-value sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// CountMissing returns how many entries of features are missing.
func CountMissing(features []float64) int {
	n := 0
	for _, v := range features {
		if IsMissing(v) {
			n++
		}
	}
	return n
}

// Edge is an undirected pair of node IDs. EdgeStore always reports edges in
// canonical form, From < To.
type Edge struct {
	From int
	To   int
}

// Canonical returns the edge with the smaller ID first.
func (e Edge) Canonical() Edge {
	if e.To < e.From {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// Node is a graph vertex with its attribute vector and label.
//
// Features may contain the Missing sentinel in any position.
type Node struct {
	// ID is the integer identifier, normally dense and 0-based.
	ID int

	// Features is the fixed-length attribute vector.
	Features []float64

	// Label is the class label carried through unchanged by every strategy.
	Label int
}
