package window_test

import (
	"fmt"

	"github.com/katalvlaran/kdistinct/window"
)

// ExampleMaxSum finds the best window with at most two distinct values.
//
// Scenario:
//
//	A = [1, 2, 1, 3], k = 2
//	windows with ≤2 distinct values include [1 2 1] (sum 4) and [1 3] (sum 4);
//	the first one found wins.
//
// Complexity: O(N) time, O(D) memory
func ExampleMaxSum() {
	best, err := window.MaxSum([]int{1, 2, 1, 3}, 2)
	fmt.Println(best, err)
	// Output: 4 <nil>
}

// ExampleBestWindow reports where the winning window sits.
func ExampleBestWindow() {
	a := []int{4, 2, 4, 5, 1}
	span, err := window.BestWindow(a, 1, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d window=%v\n", span.Sum, a[span.Left:span.Right])
	// Output: sum=5 window=[5]
}

// ExampleMaxSumWith uses a fixed-range table counter.
func ExampleMaxSumWith() {
	opts := window.DefaultOptions()
	opts.Counter = window.TableCounter
	opts.MinValue, opts.MaxValue = -10, 10

	got, err := window.MaxSumWith([]int{5, -3, 5}, 2, &opts)
	fmt.Println(got, err)

	_, err = window.MaxSumWith([]int{11}, 1, &opts)
	fmt.Println(err)
	// Output:
	// 7 <nil>
	// A[0]=11 not in [-10, 10]: window: value outside counter range
}
