// SPDX-License-Identifier: MIT
// Package: kdistinct/seqgen
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • No hidden globals; everything flows through genConfig.

package seqgen

import (
	"math"
	"math/rand"
)

// Defaults mirror the value range the table counter is sized for.
const (
	defMin  = -100000
	defMax  = 100000
	defKMax = 5 // k is drawn from [0, defKMax] unless WithK is given
)

// Option customizes Generate by mutating a genConfig.
type Option func(*genConfig)

// genConfig is the resolved option set.
type genConfig struct {
	rng      *rand.Rand
	min, max int
	alphabet int // 0 ⇒ unrestricted
	k        int
	fixedK   bool
}

func newConfig(opts ...Option) genConfig {
	cfg := genConfig{min: defMin, max: defMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed uses a new *rand.Rand seeded with seed. Seed 0 selects the
// package default seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand shares an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithRange sets the closed value interval. Panics when lo > hi or the
// interval is wider than math.MaxInt32.
func WithRange(lo, hi int) Option {
	if lo > hi || int64(hi)-int64(lo) >= math.MaxInt32 {
		panic("seqgen: WithRange(lo, hi) needs lo <= hi and a span below MaxInt32")
	}
	return func(c *genConfig) {
		c.min, c.max = lo, hi
	}
}

// WithAlphabet restricts the sequence to at most d distinct values, drawn
// once from the value range. Panics when d < 1.
func WithAlphabet(d int) Option {
	if d < 1 {
		panic("seqgen: WithAlphabet(d < 1)")
	}
	return func(c *genConfig) {
		c.alphabet = d
	}
}

// WithK fixes the distinct-value bound instead of drawing it.
// Any int is accepted, including zero and negatives.
func WithK(k int) Option {
	return func(c *genConfig) {
		c.k, c.fixedK = k, true
	}
}
