// Package skipgram trains node embeddings with skip-gram and negative
// sampling over sequences of node IDs (random walks or context subgraphs).
//
// Target and context vectors share one table. For every position i of a
// sequence, each node within Window positions is a positive example and
// Negatives uniformly drawn nodes (never the target) are negative examples.
// Each example moves both vectors by one logistic-regression step computed
// from their pre-update values:
//
//	g = (label - σ(t·c)) · LearningRate
//	t += g·c_old
//	c += g·t_old
//
// Vectors are initialized with (u - 0.5) / Dim, u uniform in [0,1).
// Results depend on the random source; assert on shape, not values.
package skipgram
