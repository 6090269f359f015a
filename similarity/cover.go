package similarity

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/graphimpute/bfs"
)

// DefaultCoverCacheSize bounds the number of memoized covers.
const DefaultCoverCacheSize = 4096

// ErrNegativeDepth is returned by NewCovers for depth < 0.
var ErrNegativeDepth = errors.New("similarity: cover depth must be >= 0")

type set map[int]struct{}

// Covers computes cover(v, depth), the set of nodes within depth hops of v
// including v, and memoizes recent results.
type Covers struct {
	g     bfs.Neighborer
	depth int
	cache *lru.Cache[int, set]
}

// NewCovers returns a cover index over g. size <= 0 selects
// DefaultCoverCacheSize.
func NewCovers(g bfs.Neighborer, depth, size int) (*Covers, error) {
	if depth < 0 {
		return nil, fmt.Errorf("NewCovers(depth=%d): %w", depth, ErrNegativeDepth)
	}
	if size <= 0 {
		size = DefaultCoverCacheSize
	}
	cache, err := lru.New[int, set](size)
	if err != nil {
		return nil, fmt.Errorf("similarity: cover cache: %w", err)
	}
	return &Covers{g: g, depth: depth, cache: cache}, nil
}

// Depth returns the configured cover depth.
func (c *Covers) Depth() int { return c.depth }

// Cover returns the sorted cover of id.
func (c *Covers) Cover(id int) []int {
	s := c.get(id)
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Structural returns the Jaccard coefficient of the covers of u and v.
// An empty union scores 0.
func (c *Covers) Structural(u, v int) float64 {
	cu, cv := c.get(u), c.get(v)
	if len(cu) > len(cv) {
		cu, cv = cv, cu
	}
	inter := 0
	for x := range cu {
		if _, ok := cv[x]; ok {
			inter++
		}
	}
	union := len(cu) + len(cv) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Purge drops every memoized cover.
func (c *Covers) Purge() { c.cache.Purge() }

func (c *Covers) get(id int) set {
	if s, ok := c.cache.Get(id); ok {
		return s
	}
	s := set{id: {}}
	// depth 0 means "self only" here, while bfs reads MaxDepth 0 as unlimited
	if c.depth > 0 {
		_, err := bfs.BFS(c.g, id,
			bfs.WithMaxDepth(c.depth),
			bfs.WithOnEnqueue(func(v, _ int) { s[v] = struct{}{} }),
		)
		if err != nil {
			// the depth is validated, so only a nil graph or a negative id
			// fails; neither has neighbors and the cover stays {id}
			s = set{id: {}}
		}
	}
	c.cache.Add(id, s)
	return s
}
