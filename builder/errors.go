// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability or masking rate outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step ran without an RNG
// (WithSeed/WithRand, or the rng argument of MaskMCAR).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDimension indicates a non-positive attribute dimension or a
// FeatureFn returning a vector of the wrong length.
var ErrInvalidDimension = errors.New("builder: invalid attribute dimension")

// ErrConstructFailed indicates a programmer error such as a nil constructor
// or a nil graph.
var ErrConstructFailed = errors.New("builder: construction failed")
