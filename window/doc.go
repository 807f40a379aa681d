// Package window computes the maximum sum of a contiguous subarray that
// contains at most k distinct values.
//
// 🚀 What is it?
//
//	A two-pointer sliding window. The right edge advances once per element;
//	whenever the window holds more than k distinct values the left edge is
//	pulled forward until the bound holds again. Every element enters and
//	leaves the window at most once.
//
// ✨ Key features:
//   - map-backed frequency counter: any int value, O(D) memory
//   - table-backed frequency counter: fixed [MinValue, MaxValue] range,
//     O(range) memory, out-of-range values rejected up front
//   - 64-bit accumulation; optional 32-bit truncation of the final result
//   - BestWindow reports where the winning window sits
//   - overflow-checked sums: ErrSumOverflow instead of a wrapped answer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kdistinct/window"
//
//	best, err := window.MaxSum([]int{1, 2, 1, 3}, 2) // 4, window [1 2 1]
//
//	opts := window.DefaultOptions()
//	opts.Counter = window.TableCounter
//	span, err := window.BestWindow(values, k, &opts)
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(D) (MapCounter) or O(MaxValue-MinValue) (TableCounter)
//
// The empty window is always admissible, so the result is never below 0.
// A negative k behaves like k = 0.
package window
