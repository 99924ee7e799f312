package shared

import "math/rand/v2"

// Random is the source of randomness used for draws and shuffles.
//
// [*rand.Rand] satisfies it. Implementations need not be safe for concurrent use.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns an unseeded [Random] backed by PCG.
func NewRandom() Random {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRandom returns a reproducible [Random] for the given seed.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
