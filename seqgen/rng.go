// Package seqgen - RNG utilities.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package seqgen

import "math/rand"

// defaultSeed is used when callers pass seed==0 or supply no RNG at all.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// intBetween draws uniformly from the closed interval [lo, hi].
// Callers guarantee lo <= hi and hi-lo < math.MaxInt32 (see WithRange).
func intBetween(r *rand.Rand, lo, hi int) int {
	return lo + int(r.Int63n(int64(hi)-int64(lo)+1))
}
