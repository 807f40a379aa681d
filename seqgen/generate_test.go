package seqgen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/kdistinct/seqgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Deterministic verifies equal seeds give equal problems.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := seqgen.Generate(64, seqgen.WithSeed(9))
	require.NoError(t, err)
	b, err := seqgen.Generate(64, seqgen.WithSeed(9))
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed, different problems (-a +b):\n%s", diff)
	}

	c, err := seqgen.Generate(64, seqgen.WithSeed(10))
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, c.Values, "different seeds should differ")
}

// TestGenerate_ZeroSeedIsDefault verifies seed 0 and no seed agree.
func TestGenerate_ZeroSeedIsDefault(t *testing.T) {
	a, err := seqgen.Generate(16, seqgen.WithSeed(0))
	require.NoError(t, err)
	b, err := seqgen.Generate(16)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b))
}

// TestGenerate_Range verifies all values stay within the closed interval.
func TestGenerate_Range(t *testing.T) {
	p, err := seqgen.Generate(500, seqgen.WithSeed(3), seqgen.WithRange(-2, 2))
	require.NoError(t, err)
	require.Len(t, p.Values, 500)
	assert.Equal(t, 500, p.N)
	seen := map[int]bool{}
	for _, v := range p.Values {
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "500 draws over 5 values should hit each")
}

// TestGenerate_Alphabet verifies the distinct-value cap.
func TestGenerate_Alphabet(t *testing.T) {
	p, err := seqgen.Generate(1000, seqgen.WithSeed(5), seqgen.WithAlphabet(3))
	require.NoError(t, err)
	seen := map[int]struct{}{}
	for _, v := range p.Values {
		seen[v] = struct{}{}
	}
	assert.LessOrEqual(t, len(seen), 3)
}

// TestGenerate_K verifies fixed and drawn k.
func TestGenerate_K(t *testing.T) {
	p, err := seqgen.Generate(4, seqgen.WithK(-3))
	require.NoError(t, err)
	assert.Equal(t, -3, p.K)

	for seed := int64(1); seed <= 20; seed++ {
		p, err = seqgen.Generate(1, seqgen.WithSeed(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.K, 0)
		assert.LessOrEqual(t, p.K, 5)
	}
}

// TestGenerate_SharedRand verifies WithRand consumes the caller's stream.
func TestGenerate_SharedRand(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	a, err := seqgen.Generate(8, seqgen.WithRand(r))
	require.NoError(t, err)
	b, err := seqgen.Generate(8, seqgen.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, b.Values, "shared stream advances between calls")
}

// TestGenerate_BadInput covers the error and panic paths.
func TestGenerate_BadInput(t *testing.T) {
	_, err := seqgen.Generate(-1)
	assert.ErrorIs(t, err, seqgen.ErrBadSize)
	_, err = seqgen.Generate(seqgen.MaxSize + 1)
	assert.ErrorIs(t, err, seqgen.ErrBadSize)
	_, err = seqgen.Generate(math.MaxInt)
	assert.ErrorIs(t, err, seqgen.ErrBadSize)

	p, err := seqgen.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, p.Values)

	assert.Panics(t, func() { seqgen.WithRand(nil) })
	assert.Panics(t, func() { seqgen.WithRange(3, 2) })
	assert.Panics(t, func() { seqgen.WithAlphabet(0) })
}
