package similarity

import (
	"container/heap"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Match is one TopK result.
type Match struct {
	ID     int
	Score  float64
	Vector []float64
}

// worse orders matches by score, breaking ties towards the larger ID so the
// result does not depend on map iteration order.
func worse(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.ID > b.ID
}

// matchHeap keeps the worst retained match on top.
type matchHeap []Match

func (h matchHeap) Len() int           { return len(h) }
func (h matchHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h matchHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x any)        { *h = append(*h, x.(Match)) }
func (h *matchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns up to k embeddings most cosine-similar to query, best first.
//
// Candidates whose length differs from the query, whose vector equals the
// query exactly, or whose norm is zero are skipped. A zero-norm query or
// k <= 0 returns nil. Vector in each Match aliases the input map entry.
//
// Complexity: O(N log k).
func TopK(embeddings map[int][]float64, query []float64, k int) []Match {
	if k <= 0 || len(query) == 0 {
		return nil
	}
	qn := floats.Norm(query, 2)
	if qn == 0 {
		return nil
	}

	h := make(matchHeap, 0, k+1)
	for id, vec := range embeddings {
		if len(vec) != len(query) || slices.Equal(vec, query) {
			continue
		}
		vn := floats.Norm(vec, 2)
		if vn == 0 {
			continue
		}
		m := Match{ID: id, Score: floats.Dot(query, vec) / (qn * vn), Vector: vec}
		if h.Len() < k {
			heap.Push(&h, m)
		} else if worse(h[0], m) {
			h[0] = m
			heap.Fix(&h, 0)
		}
	}

	out := make([]Match, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(Match)
	}
	return out
}
