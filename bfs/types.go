// Package bfs provides tunable options and error definitions
// for breadth-first search over an integer-keyed adjacency source.
package bfs

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is negative.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil adjacency source is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Neighborer is the read surface BFS needs. Both core.Graph and
// core.EdgeStore satisfy it; unknown IDs must yield an empty slice.
type Neighborer interface {
	Neighbors(id int) []int
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds the limits and the enqueue hook of one search.
type BFSOptions struct {
	// OnEnqueue is called once per discovered vertex, the start included,
	// with its hop distance.
	OnEnqueue func(id, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// MaxDiscovered, if > 0, stops the whole search as soon as this many
	// vertices other than the start have been discovered. It is a count cap,
	// not a depth cap: the last layer may be cut part way through.
	MaxDiscovered int

	err error
}

// DefaultOptions returns a BFSOptions with no limits and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{OnEnqueue: func(int, int) {}}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxDiscovered stops the search once n vertices besides the start
// have been discovered. n == 0 disables the cap; n < 0 is a violation.
func WithMaxDiscovered(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDiscovered cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDiscovered = n
	}
}

// BFSResult holds the hop distance of every discovered vertex, including
// ones still queued when a count cap stopped the search.
type BFSResult struct {
	Depth map[int]int
}

// Discovered returns every discovered vertex except the start, sorted by
// (depth, id).
func (r *BFSResult) Discovered() []int {
	out := make([]int, 0, len(r.Depth))
	for id, d := range r.Depth {
		if d > 0 {
			out = append(out, id)
		}
	}
	slices.SortFunc(out, func(a, b int) int {
		if da, db := r.Depth[a], r.Depth[b]; da != db {
			return da - db
		}
		return a - b
	})
	return out
}
