// Package bfs provides breadth-first search over an integer-keyed adjacency
// source, returning the hop distance of every discovered vertex.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an enqueue hook, depth limiting and a discovery count cap.
package bfs

import (
	"fmt"
	"reflect"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph      Neighborer
	opts       BFSOptions
	queue      []queueItem
	res        *BFSResult
	discovered int
	capped     bool
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ErrOptionViolation for bad options.
func BFS(g Neighborer, start int, opts ...Option) (*BFSResult, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res:   &BFSResult{Depth: make(map[int]int)},
	}

	// seed with the start vertex; it does not count towards MaxDiscovered
	w.res.Depth[start] = 0
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem{id: start})
	w.loop()

	return w.res, nil
}

// isNil catches typed nil pointers hidden inside the interface.
func isNil(g Neighborer) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// loop processes the queue until it is empty or the count cap is hit.
func (w *walker) loop() {
	for len(w.queue) > 0 && !w.capped {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors applies MaxDepth and MaxDiscovered, and enqueues each
// unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.opts.OnEnqueue(nbr, next)
		w.queue = append(w.queue, queueItem{id: nbr, depth: next})

		w.discovered++
		if w.opts.MaxDiscovered > 0 && w.discovered >= w.opts.MaxDiscovered {
			w.capped = true
			return
		}
	}
}
