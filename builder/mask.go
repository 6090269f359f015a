// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// mask.go - MCAR masking of attribute entries.

package builder

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/graphimpute/core"
)

const methodMaskMCAR = "MaskMCAR"

// MaskMCAR hides each present attribute entry of g independently with
// probability rate and returns how many entries it hid. Nodes are visited in
// ascending ID order and entries in index order, so a seeded rng gives a
// reproducible mask.
//
// rate must lie in [0,1]; rng is required when 0 < rate < 1.
func MaskMCAR(g *core.Graph, rate float64, rng *rand.Rand) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: nil graph: %w", methodMaskMCAR, ErrConstructFailed)
	}
	if err := validateProbability(methodMaskMCAR, rate); err != nil {
		return 0, err
	}
	if rng == nil && rate > 0 && rate < 1 {
		return 0, wrapNeedRand(methodMaskMCAR)
	}
	if rate == 0 {
		return 0, nil
	}

	ids := slices.Clone(g.Nodes())
	slices.Sort(ids)

	masked := 0
	for _, id := range ids {
		features := g.Features(id)
		changed := false
		for i, v := range features {
			if core.IsMissing(v) {
				continue
			}
			if rate == 1 || rng.Float64() < rate {
				features[i] = core.Missing()
				changed = true
				masked++
			}
		}
		if !changed {
			continue
		}
		if err := g.UpdateFeatures(id, features); err != nil {
			return masked, fmt.Errorf("%s: %w", methodMaskMCAR, err)
		}
	}
	return masked, nil
}
