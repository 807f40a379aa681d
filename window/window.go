package window

import "fmt"

// Max-sum window with at most k distinct values
//
// Description:
//
//	Among all contiguous windows A[l:r] holding at most k distinct values,
//	find the one with the largest sum. The empty window (sum 0) always
//	qualifies, so the answer is never negative.
//
// Algorithm Outline:
//  1. left = 0, distinct = 0, curr = 0, best = empty window.
//  2. For right = 0..n-1:
//     count A[right]; distinct++ if its count went 0→1; curr += A[right].
//     While distinct > k:
//     uncount A[left]; distinct-- if its count went 1→0;
//     curr -= A[left]; left++.
//     If curr > best.Sum, best = A[left:right+1].
//  3. Return best.
//
// Invariant: after the shrink loop distinct ≤ max(k, 0).
//
// Complexity:
//
//	Time   = O(n), each element enters and leaves the window at most once.
//	Memory = O(D) (MapCounter) or O(MaxValue-MinValue) (TableCounter).
//
// Errors:
//   - ErrBadOptions  — unknown counter kind or unusable table range.
//   - ErrValueRange  — a value outside a TableCounter's range.
//   - ErrSumOverflow — a window sum outside the int64 range.

// MaxSum returns the maximum sum of a contiguous subarray of a holding at
// most k distinct values, using DefaultOptions.
//
// The only possible error is ErrSumOverflow: MapCounter accepts every
// int, so a running window sum can leave the int64 range.
//
// Example:
//
//	best, err := MaxSum([]int{1, 2, 1, 3}, 2) // 4, nil
func MaxSum(a []int, k int) (int64, error) {
	return MaxSumWith(a, k, nil)
}

// MaxSumWith is MaxSum with explicit options. opts == nil means
// DefaultOptions. With opts.Truncate32 the result is truncated to a 32-bit
// signed integer after the 64-bit scan completes.
func MaxSumWith(a []int, k int, opts *Options) (int64, error) {
	span, err := BestWindow(a, k, opts)
	if err != nil {
		return 0, err
	}

	return span.Value(opts), nil
}

// BestWindow returns the window achieving the maximum sum. Among equal
// sums the one whose right edge comes first wins. If no non-empty window
// has a positive sum the zero Span is returned.
//
// Span.Sum is never truncated; use Span.Value to apply Options.Truncate32.
func BestWindow(a []int, k int, opts *Options) (Span, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	freq, err := newCounter(a, o)
	if err != nil {
		return Span{}, err
	}
	if k < 0 {
		k = 0
	}

	var (
		best     Span
		left     int
		distinct int
		curr     int64
		ok       bool
	)
	for right, v := range a {
		if freq.add(v) {
			distinct++
		}
		if curr, ok = addInt64(curr, int64(v)); !ok {
			return Span{}, fmt.Errorf("adding A[%d]=%d to window [%d, %d): %w", right, v, left, right, ErrSumOverflow)
		}

		for distinct > k {
			u := a[left]
			if freq.remove(u) {
				distinct--
			}
			if curr, ok = subInt64(curr, int64(u)); !ok {
				return Span{}, fmt.Errorf("removing A[%d]=%d from window [%d, %d): %w", left, u, left, right+1, ErrSumOverflow)
			}
			left++
		}

		if curr > best.Sum {
			best = Span{Left: left, Right: right + 1, Sum: curr, Distinct: distinct}
		}
	}

	return best, nil
}

// addInt64 returns x+y and false when the sum wraps.
func addInt64(x, y int64) (int64, bool) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, false
	}

	return s, true
}

// subInt64 returns x-y and false when the difference wraps.
func subInt64(x, y int64) (int64, bool) {
	d := x - y
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return 0, false
	}

	return d, true
}
