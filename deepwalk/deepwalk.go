// SPDX-License-Identifier: MIT
// File: deepwalk.go
// Role: Attributed DeepWalk strategy: fused edge weights → alias walks →
//       skip-gram → embedding fill.

package deepwalk

import (
	"fmt"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/similarity"
	"github.com/katalvlaran/graphimpute/skipgram"
	"github.com/katalvlaran/graphimpute/walk"
)

// RNG stream ids derived from the run seed.
const (
	streamWalk uint64 = iota + 1
	streamTrain
	streamFill
)

// Defaults returns the default parameters.
func Defaults() impute.Params {
	return impute.EmbeddingDefaults().WithExtra(impute.Params{
		impute.KeyFusionCoefficient: 0.5,
		impute.KeyCoverDepth:        2,
		impute.KeyWalkLength:        80,
		impute.KeyWalksPerNode:      10,
	})
}

// settings is the validated parameter view of one run.
type settings struct {
	impute.EmbeddingSettings
	fusion       float64
	coverDepth   int
	walkLength   int
	walksPerNode int
}

func (s *Strategy) settings() (settings, error) {
	emb, err := s.Params.Embedding()
	if err != nil {
		return settings{}, err
	}
	out := settings{EmbeddingSettings: emb}
	out.fusion = s.Params.Float(impute.KeyFusionCoefficient, 0.5)
	if !(out.fusion >= 0 && out.fusion <= 1) {
		return out, fmt.Errorf("%w: %s=%v must be in [0,1]", impute.ErrInvalidParam, impute.KeyFusionCoefficient, out.fusion)
	}
	if err := s.Params.Ints(map[string]*int{
		impute.KeyCoverDepth:   &out.coverDepth,
		impute.KeyWalkLength:   &out.walkLength,
		impute.KeyWalksPerNode: &out.walksPerNode,
	}); err != nil {
		return out, err
	}
	if err := impute.NonNegative(impute.KeyCoverDepth, out.coverDepth); err != nil {
		return out, err
	}
	if err := impute.Positive(impute.KeyWalkLength, out.walkLength); err != nil {
		return out, err
	}
	return out, impute.Positive(impute.KeyWalksPerNode, out.walksPerNode)
}

// Strategy is the Attributed DeepWalk imputer.
type Strategy struct {
	impute.Base

	covers     *similarity.Covers
	walker     *walk.Generator
	embeddings map[int][]float64
	stats      impute.FillStats
}

var _ impute.Strategy = (*Strategy)(nil)

// New returns an Attributed DeepWalk strategy over g.
func New(g *core.Graph, opts ...impute.Option) *Strategy {
	return &Strategy{Base: impute.NewBase(g, Defaults(), opts...)}
}

// Reset restores defaults and drops covers, alias tables and embeddings.
// Fused weights already written to the graph stay in place.
func (s *Strategy) Reset() {
	s.ResetParams()
	if s.covers != nil {
		s.covers.Purge()
	}
	s.covers = nil
	s.walker = nil
	s.embeddings = nil
	s.stats = impute.FillStats{}
}

// Embeddings returns the vectors learned by the last Run.
func (s *Strategy) Embeddings() map[int][]float64 { return s.embeddings }

// Stats reports the outcome of the last Run.
func (s *Strategy) Stats() impute.FillStats { return s.stats }

// Run fills missing values of the owned graph.
func (s *Strategy) Run() error {
	if s.Graph == nil {
		return impute.ErrGraphNil
	}
	set, err := s.settings()
	if err != nil {
		return fmt.Errorf("deepwalk: %w", err)
	}

	if err := s.weighEdges(set); err != nil {
		return err
	}
	s.walker, err = walk.New(s.Graph)
	if err != nil {
		return fmt.Errorf("deepwalk: %w", err)
	}

	rng := impute.NewRand(set.Seed)
	walks := s.walker.Walks(set.walksPerNode, set.walkLength, impute.DeriveRand(rng, streamWalk))
	s.Log.Debug("walks drawn", "count", len(walks), "length", set.walkLength)

	trainer, err := skipgram.New(set.SkipGram, impute.DeriveRand(rng, streamTrain))
	if err != nil {
		return fmt.Errorf("deepwalk: %w", err)
	}
	nodes := s.Graph.Nodes()
	s.embeddings = trainer.Init(nodes)
	steps := trainer.Train(s.embeddings, walks, nodes)
	s.Log.Debug("embeddings trained", "nodes", len(s.embeddings), "steps", steps)

	s.stats, err = impute.FillFromEmbeddings(s.Graph, s.embeddings, set.Fill, impute.DeriveRand(rng, streamFill), s.Log)
	if err != nil {
		return fmt.Errorf("deepwalk: %w", err)
	}
	return nil
}

// weighEdges stores the fused similarity on every edge.
func (s *Strategy) weighEdges(set settings) error {
	covers, err := similarity.NewCovers(s.Graph, set.coverDepth, 0)
	if err != nil {
		return fmt.Errorf("deepwalk: %w: %w", impute.ErrInvalidParam, err)
	}
	s.covers = covers

	for _, e := range s.Graph.Edges() {
		attr := similarity.Attribute(s.Graph.Features(e.From), s.Graph.Features(e.To))
		structural := covers.Structural(e.From, e.To)
		s.Graph.SetEdgeWeight(e.From, e.To, FusedWeight(set.fusion, attr, structural))
	}
	return nil
}

// FusedWeight blends attribute and structural similarity with coefficient lambda.
func FusedWeight(lambda, attr, structural float64) float64 {
	return lambda*attr + (1-lambda)*structural
}
