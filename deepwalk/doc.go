// Package deepwalk imputes attributes from Attributed DeepWalk embeddings.
//
// Pipeline:
//
//  1. Weigh every edge with the fused score
//     λ·Attribute(u,v) + (1−λ)·Structural(u,v), where Attribute is the
//     cosine over commonly observed dimensions and Structural the Jaccard
//     overlap of depth-bounded covers. Weights are stored on the graph.
//  2. Build one alias table per node and draw walksPerNode shuffled passes
//     of walks of at most walkLength nodes (package walk).
//  3. Train skip-gram embeddings on the walks (package skipgram).
//  4. Fill each missing value from the k nodes closest in embedding space.
//
// Parameters: the shared embedding set plus fusionCoefficient (λ, default
// 0.5), coverDepth (default 2), walkLength (default 80) and walksPerNode
// (default 10).
package deepwalk
