package similarity

import (
	"math/rand"
	"slices"
)

// Sample draws n entries from embeddings uniformly with replacement.
// Repeated draws collapse, so the result holds at most n entries.
// n <= 0 or an empty input returns an empty map.
func Sample(embeddings map[int][]float64, n int, rng *rand.Rand) map[int][]float64 {
	out := make(map[int][]float64)
	if n <= 0 || len(embeddings) == 0 {
		return out
	}
	keys := make([]int, 0, len(embeddings))
	for id := range embeddings {
		keys = append(keys, id)
	}
	slices.Sort(keys)

	for i := 0; i < n; i++ {
		id := keys[rng.Intn(len(keys))]
		out[id] = embeddings[id]
	}
	return out
}
