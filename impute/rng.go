// RNG utilities shared by the strategies.
//
//   - Determinism: same seed ⇒ identical runs; no time-based sources.
//   - math/rand.Rand is NOT goroutine-safe; each run owns its own.

package impute

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand; seed == 0 selects DefaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent stream from base and a stream id,
// consuming one value of base. A nil base uses DefaultSeed as parent.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Seed reads the seed parameter of p.
func (p Params) Seed() int64 { return int64(p.Float(KeySeed, 0)) }
