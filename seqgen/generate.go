package seqgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kdistinct/input"
)

// ErrBadSize indicates a negative sequence length or one above MaxSize.
var ErrBadSize = errors.New("seqgen: invalid size")

// MaxSize caps n so Generate never attempts an allocation the runtime
// rejects (64Mi values).
const MaxSize = 1 << 26

// Generate returns a Problem with n values.
//
// Values are uniform over the configured range, or, with WithAlphabet(d),
// uniform over d values that are themselves drawn from the range once.
// K is fixed by WithK or drawn uniformly from [0, 5].
//
// Draw order is stable (alphabet, values, k) so a seed pins the result.
//
// Complexity: O(n + d) time, O(n + d) memory.
func Generate(n int, opts ...Option) (input.Problem, error) {
	if n < 0 || n > MaxSize {
		return input.Problem{}, fmt.Errorf("Generate(n=%d) needs 0 <= n <= %d: %w", n, MaxSize, ErrBadSize)
	}
	cfg := newConfig(opts...)
	r := cfg.rng

	var pool []int
	if cfg.alphabet > 0 {
		pool = make([]int, cfg.alphabet)
		for i := range pool {
			pool[i] = intBetween(r, cfg.min, cfg.max)
		}
	}

	values := make([]int, n)
	for i := range values {
		if pool != nil {
			values[i] = pool[r.Intn(len(pool))]
		} else {
			values[i] = intBetween(r, cfg.min, cfg.max)
		}
	}

	k := cfg.k
	if !cfg.fixedK {
		k = r.Intn(defKMax + 1)
	}

	return input.Problem{N: n, K: k, Values: values}, nil
}
