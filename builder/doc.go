// SPDX-License-Identifier: MIT
// Package builder assembles deterministic attributed graph fixtures for tests,
// examples and benchmarks of the imputation strategies.
//
// The package offers:
//
//   - BuildGraph: the single orchestrator. It creates a graph of a fixed
//     attribute dimension and applies constructors in order.
//   - Topology constructors: Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid and RandomSparse. Each appends its nodes after
//     the highest ID already present, so composing constructors yields
//     disjoint components.
//   - Attribute policies: FeatureFn (IndexFeatureFn, ConstantFeatureFn,
//     UniformFeatureFn, NormalFeatureFn) and LabelFn (ParityLabelFn,
//     ConstantLabelFn), selected through BuilderOption values.
//   - MaskMCAR: hides attribute entries completely at random, producing the
//     missing values the strategies fill.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
