// Package graphimpute fills missing node attributes of an attributed graph
// using the graph's structure.
//
// What is in the box?
//
//	• Core primitives: integer-keyed nodes with float attribute vectors,
//	  a CSR edge store with optional weights, NaN as the missing marker
//	• Traversal: count-capped and depth-limited BFS
//	• Sampling: Vose alias tables and weighted random walks
//	• Similarity: attribute cosine, structural Jaccard over BFS covers, top-k search
//	• Embeddings: Topo2Vec context subgraphs and skip-gram with negative sampling
//	• Strategies: k-NN, Topo2Vec and Attributed DeepWalk behind impute.Strategy
//
// Packages, leaves first:
//
//	core/       — Node, Edge, EdgeStore, Graph and the missing-value helpers
//	bfs/        — breadth-first search with hooks and caps
//	alias/      — O(1) categorical sampling
//	walk/       — alias-driven random walk corpus
//	similarity/ — attribute and structural scores, top-k, sampling
//	subgraph/   — Topo2Vec context subgraph expansion
//	skipgram/   — skip-gram trainer over node sequences
//	impute/     — Strategy contract, parameters, RNG streams, embedding fill
//	knn/, topo2vec/, deepwalk/ — the three strategies
//	runner/     — strategy selection, run reports and metrics
//	graphio/    — node/edge file loader and feature writer
//	config/     — YAML run configuration and logger
//	metrics/    — Prometheus collectors
//	builder/    — deterministic fixtures and MCAR masking
//	converters/ — export to gonum/graph
//	cmd/graphimpute — the command line tool
//
// Quick example:
//
//	1:[1,#] ── 2:[2,3] ── 3:[3,4] ── 4:[#,5]
//
// k-NN with k=2 fills node 1's second value with 3.5, the mean of its two
// nearest neighbors by hop distance.
//
//	go install github.com/katalvlaran/graphimpute/cmd/graphimpute@latest
package graphimpute
