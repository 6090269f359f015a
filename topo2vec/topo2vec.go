// SPDX-License-Identifier: MIT
// File: topo2vec.go
// Role: Topo2Vec strategy: context subgraphs → skip-gram → embedding fill.

package topo2vec

import (
	"fmt"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/skipgram"
	"github.com/katalvlaran/graphimpute/subgraph"
)

// RNG stream ids derived from the run seed.
const (
	streamTrain uint64 = iota + 1
	streamFill
)

// Defaults returns the default parameters.
func Defaults() impute.Params {
	return impute.EmbeddingDefaults().WithExtra(impute.Params{
		impute.KeyExpansionRounds: 0,
		impute.KeyMaxSubgraphSize: 0,
	})
}

// Strategy is the Topo2Vec imputer.
type Strategy struct {
	impute.Base

	subgraphs  [][]int
	embeddings map[int][]float64
	stats      impute.FillStats
}

var _ impute.Strategy = (*Strategy)(nil)

// New returns a Topo2Vec strategy over g.
func New(g *core.Graph, opts ...impute.Option) *Strategy {
	return &Strategy{Base: impute.NewBase(g, Defaults(), opts...)}
}

// Reset restores defaults and drops subgraphs and embeddings.
func (s *Strategy) Reset() {
	s.ResetParams()
	s.subgraphs = nil
	s.embeddings = nil
	s.stats = impute.FillStats{}
}

// Embeddings returns the vectors learned by the last Run.
func (s *Strategy) Embeddings() map[int][]float64 { return s.embeddings }

// Subgraphs returns the context subgraphs of the last Run, in Nodes() order.
func (s *Strategy) Subgraphs() [][]int { return s.subgraphs }

// Stats reports the outcome of the last Run.
func (s *Strategy) Stats() impute.FillStats { return s.stats }

// Run fills missing values of the owned graph.
func (s *Strategy) Run() error {
	if s.Graph == nil {
		return impute.ErrGraphNil
	}
	set, err := s.Params.Embedding()
	if err != nil {
		return fmt.Errorf("topo2vec: %w", err)
	}
	rounds, maxSize := 0, 0
	if err := s.Params.Ints(map[string]*int{
		impute.KeyExpansionRounds: &rounds,
		impute.KeyMaxSubgraphSize: &maxSize,
	}); err != nil {
		return fmt.Errorf("topo2vec: %w", err)
	}

	b, err := subgraph.New(s.Graph,
		subgraph.WithTau(set.Tau),
		subgraph.WithRounds(rounds),
		subgraph.WithMaxSize(maxSize),
	)
	if err != nil {
		return fmt.Errorf("topo2vec: %w: %w", impute.ErrInvalidParam, err)
	}
	s.subgraphs = b.BuildAll()
	s.Log.Debug("context subgraphs built", "count", len(s.subgraphs), "rounds", b.Rounds())

	rng := impute.NewRand(set.Seed)
	trainer, err := skipgram.New(set.SkipGram, impute.DeriveRand(rng, streamTrain))
	if err != nil {
		return fmt.Errorf("topo2vec: %w", err)
	}
	nodes := s.Graph.Nodes()
	s.embeddings = trainer.Init(nodes)
	steps := trainer.Train(s.embeddings, s.subgraphs, nodes)
	skipgram.Normalize(s.embeddings)
	s.Log.Debug("embeddings trained", "nodes", len(s.embeddings), "steps", steps)

	s.stats, err = impute.FillFromEmbeddings(s.Graph, s.embeddings, set.Fill, impute.DeriveRand(rng, streamFill), s.Log)
	if err != nil {
		return fmt.Errorf("topo2vec: %w", err)
	}
	return nil
}
