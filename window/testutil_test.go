package window_test

import (
	"testing"

	"github.com/katalvlaran/kdistinct/window"
	"github.com/stretchr/testify/require"
)

// mustMaxSum runs window.MaxSum and fails the test on error.
func mustMaxSum(t *testing.T, a []int, k int) int64 {
	t.Helper()
	got, err := window.MaxSum(a, k)
	require.NoError(t, err)

	return got
}

// bruteForce enumerates every window and returns the best admissible sum.
// O(n²) with an incremental distinct set per left edge.
func bruteForce(a []int, k int) int64 {
	var best int64
	for l := range a {
		seen := make(map[int]struct{})
		var sum int64
		for r := l; r < len(a); r++ {
			seen[a[r]] = struct{}{}
			if len(seen) > k {
				break
			}
			sum += int64(a[r])
			if sum > best {
				best = sum
			}
		}
	}

	return best
}

// distinctCount returns the number of distinct values in a.
func distinctCount(a []int) int {
	seen := make(map[int]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}

	return len(seen)
}

func sum(a []int) int64 {
	var s int64
	for _, v := range a {
		s += int64(v)
	}

	return s
}
