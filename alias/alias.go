// SPDX-License-Identifier: MIT
// File: alias.go
// Role: Vose alias table construction and O(1) draws.

package alias

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidWeight is returned for negative, NaN or infinite weights.
var ErrInvalidWeight = errors.New("alias: invalid weight")

// Table is an alias table over n categories. prob[i] is the mass bin i
// retains; alias[i] is the category drawn when the coin exceeds it.
type Table struct {
	prob  []float64
	alias []int
}

// New builds a table over weights. See the package doc for degenerate input.
// Complexity: O(n) time and memory.
func New(weights []float64) (*Table, error) {
	n := len(weights)
	t := &Table{prob: make([]float64, n), alias: make([]int, n)}
	if n == 0 {
		return t, nil
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("alias: weight %d = %v: %w", i, w, ErrInvalidWeight)
		}
	}

	// scaled[i] = n * p_i; a zero sum falls back to uniform
	scaled := make([]float64, n)
	sum := floats.Sum(weights)
	if sum > 0 {
		floats.ScaleTo(scaled, float64(n)/sum, weights)
	} else {
		for i := range scaled {
			scaled[i] = 1
		}
	}

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, s := range scaled {
		if s < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l

		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// leftovers only differ from 1 by rounding
	for _, i := range large {
		t.prob[i], t.alias[i] = 1, i
	}
	for _, i := range small {
		t.prob[i], t.alias[i] = 1, i
	}

	return t, nil
}

// Len returns the number of categories.
func (t *Table) Len() int { return len(t.prob) }

// Draw samples a category index in O(1), or -1 for an empty table.
func (t *Table) Draw(rng *rand.Rand) int {
	n := len(t.prob)
	if n == 0 {
		return -1
	}
	i := rng.Intn(n)
	if rng.Float64() < t.prob[i] {
		return i
	}
	return t.alias[i]
}

// Distribution returns the categorical distribution encoded by the table:
// each bin contributes prob/n to itself and (1-prob)/n to its alias.
func (t *Table) Distribution() []float64 {
	n := len(t.prob)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	inv := 1 / float64(n)
	for i, p := range t.prob {
		out[i] += p * inv
		out[t.alias[i]] += (1 - p) * inv
	}
	return out
}
