// Package impute defines the contract shared by every imputation strategy
// and the pieces the strategies have in common.
//
// Lifecycle (the only surface callers depend on):
//
//	s.Configure(params) // merge recognized keys onto current settings
//	err := s.Run()      // fill missing values of the owned *core.Graph in place
//	g := s.ExtractResults()
//	s.Reset()           // restore defaults, drop scratch caches
//
// Params is a flat name → number map. Keys a strategy does not recognize are
// ignored. Invalid values surface from Run as ErrInvalidParam.
//
// Shared pieces:
//   - Base: graph ownership, parameter merging, logger.
//   - EmbeddingSettings: the skip-gram and fill parameters of the embedding strategies.
//   - FillFromEmbeddings: fill missing values from the k most similar embeddings.
//   - NewRand / DeriveRand: seeded, reproducible random sources.
package impute
