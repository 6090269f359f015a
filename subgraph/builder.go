// SPDX-License-Identifier: MIT
// File: builder.go
// Role: Context subgraph expansion (seed phase + affinity-filtered rounds).

package subgraph

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/graphimpute/core"
)

// DefaultTau is the affinity threshold used when none is given.
const DefaultTau = 0.5

// Sentinel errors.
var (
	ErrGraphNil     = errors.New("subgraph: graph is nil")
	ErrInvalidTau   = errors.New("subgraph: tau must be in (0,1]")
	ErrInvalidLimit = errors.New("subgraph: rounds and max size must be >= 0")
)

// Option configures a Builder.
type Option func(*Builder)

// WithTau sets the affinity threshold τ.
func WithTau(tau float64) Option {
	return func(b *Builder) { b.tau = tau }
}

// WithRounds overrides the number of expansion rounds. 0 keeps the default,
// the graph's rounded average degree (at least 1).
func WithRounds(n int) Option {
	return func(b *Builder) { b.rounds = n }
}

// WithMaxSize caps the subgraph size, root included. 0 means no cap.
func WithMaxSize(n int) Option {
	return func(b *Builder) { b.maxSize = n }
}

// Builder grows context subgraphs over one graph.
type Builder struct {
	g       *core.Graph
	tau     float64
	rounds  int
	maxSize int
}

// New validates opts and returns a Builder over g.
func New(g *core.Graph, opts ...Option) (*Builder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	b := &Builder{g: g, tau: DefaultTau}
	for _, opt := range opts {
		opt(b)
	}
	if !(b.tau > 0 && b.tau <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTau, b.tau)
	}
	if b.rounds < 0 || b.maxSize < 0 {
		return nil, fmt.Errorf("%w: rounds=%d maxSize=%d", ErrInvalidLimit, b.rounds, b.maxSize)
	}
	if b.rounds == 0 {
		b.rounds = max(1, int(math.Round(g.AverageDegree())))
	}

	return b, nil
}

// Rounds returns the effective number of expansion rounds.
func (b *Builder) Rounds() int { return b.rounds }

// BuildAll returns one context subgraph per node, in Nodes() order.
func (b *Builder) BuildAll() [][]int {
	ids := b.g.Nodes()
	out := make([][]int, len(ids))
	for i, id := range ids {
		out[i] = b.Build(id)
	}
	return out
}

// candidate is a scored node waiting to join the subgraph.
type candidate struct {
	id     int
	na, sa float64
}

func byAffinity(a, b candidate) int {
	if c := cmp.Compare(b.na, a.na); c != 0 {
		return c
	}
	if c := cmp.Compare(b.sa, a.sa); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// state is the growing subgraph of one root.
type state struct {
	seq      []int
	members  map[int]struct{}
	expanded map[int]struct{}
	inner    int // edges with both ends in members
}

// overlap counts the neighbors of id that are in set.
func (b *Builder) overlap(id int, set map[int]struct{}) int {
	n := 0
	for _, nb := range b.g.Neighbors(id) {
		if _, ok := set[nb]; ok {
			n++
		}
	}
	return n
}

func (b *Builder) full(st *state) bool {
	return b.maxSize > 0 && len(st.seq) >= b.maxSize
}

// insert adds id to the subgraph and accounts for its inner edges.
func (b *Builder) insert(st *state, id int) {
	st.inner += b.overlap(id, st.members)
	st.members[id] = struct{}{}
	st.seq = append(st.seq, id)
}

// Build returns the context subgraph of v: v first, then accepted nodes in
// insertion order.
func (b *Builder) Build(v int) []int {
	st := &state{
		seq:      []int{v},
		members:  map[int]struct{}{v: {}},
		expanded: map[int]struct{}{v: {}},
	}

	// seed phase: NA(c) = |N(c) ∩ N(v)| / deg(c); v itself is not counted
	nbrs := b.g.Neighbors(v)
	seedSet := make(map[int]struct{}, len(nbrs))
	for _, nb := range nbrs {
		seedSet[nb] = struct{}{}
	}
	seeds := make([]candidate, 0, len(nbrs))
	for _, c := range nbrs {
		na := float64(b.overlap(c, seedSet)) / float64(b.g.Degree(c))
		if na >= b.tau {
			seeds = append(seeds, candidate{id: c, na: na})
		}
	}
	slices.SortFunc(seeds, byAffinity)
	for _, c := range seeds {
		if b.full(st) {
			return st.seq
		}
		b.insert(st, c.id)
	}

	for round := 0; round < b.rounds && !b.full(st); round++ {
		if !b.expand(st) {
			break
		}
	}

	return st.seq
}

// expand runs one round and reports whether any node joined.
func (b *Builder) expand(st *state) bool {
	frontier := make([]int, 0, len(st.seq))
	for _, u := range st.seq {
		if _, done := st.expanded[u]; !done {
			frontier = append(frontier, u)
		}
	}
	if len(frontier) == 0 {
		return false
	}

	seen := make(map[int]struct{})
	var found []candidate
	for _, u := range frontier {
		st.expanded[u] = struct{}{}
		for _, c := range b.g.Neighbors(u) {
			if _, in := st.members[c]; in {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}

			hits := float64(b.overlap(c, st.members))
			na := hits / float64(b.g.Degree(c))
			sa := 1.0
			if st.inner > 0 {
				sa = hits / float64(st.inner)
			}
			if na >= b.tau && sa >= b.tau {
				found = append(found, candidate{id: c, na: na, sa: sa})
			}
		}
	}
	slices.SortFunc(found, byAffinity)

	added := false
	for _, c := range found {
		if b.full(st) {
			break
		}
		b.insert(st, c.id)
		added = true
	}

	return added
}
