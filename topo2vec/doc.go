// Package topo2vec imputes attributes from structural embeddings learned on
// Topo2Vec context subgraphs.
//
// Run builds one context subgraph per node (package subgraph), trains
// skip-gram embeddings on them (package skipgram), L2-normalizes every
// vector, and fills each missing value with the mean over the k nodes
// closest in embedding space (impute.FillFromEmbeddings).
//
// Parameters: the shared embedding set (tau, embeddingDimensions, numEpochs,
// windowSize, numNegativeSamples, learningRate, k, sampleSize, maxIterations,
// seed) plus expansionRounds (0 = rounded average degree) and
// maxSubgraphSize (0 = unbounded).
package topo2vec
