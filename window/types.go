package window

import (
	"fmt"
	"strings"
)

// CounterKind selects the frequency structure used to track the window.
//
//   - MapCounter   — hash map keyed by value. Any int is accepted.
//     Memory: O(D), D = distinct values seen.
//
//   - TableCounter — dense slice indexed by value-MinValue.
//     Memory: O(MaxValue-MinValue+1). Values outside the range are rejected.
type CounterKind int

const (
	// MapCounter stores counts in a map[int]int.
	MapCounter CounterKind = iota

	// TableCounter stores counts in a fixed, offset-indexed slice.
	TableCounter
)

// Default table range. Matches inputs bounded to ±100000.
const (
	DefaultMinValue = -100000
	DefaultMaxValue = 100000
)

// maxTableLen caps TableCounter allocations (64Mi counters).
const maxTableLen = 1 << 26

// String returns the lower-case name used by configuration and flags.
func (k CounterKind) String() string {
	switch k {
	case MapCounter:
		return "map"
	case TableCounter:
		return "table"
	default:
		return fmt.Sprintf("CounterKind(%d)", int(k))
	}
}

// ParseCounterKind maps "map" or "table" (case-insensitive) to a CounterKind.
func ParseCounterKind(s string) (CounterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "map", "":
		return MapCounter, nil
	case "table":
		return TableCounter, nil
	default:
		return 0, fmt.Errorf("counter %q: %w", s, ErrBadOptions)
	}
}

// Options configures the window scan.
//
// Fields:
//   - Counter    — MapCounter (default) or TableCounter.
//   - MinValue   — smallest value a TableCounter accepts. Ignored by MapCounter.
//   - MaxValue   — largest value a TableCounter accepts. Ignored by MapCounter.
//   - Truncate32 — MaxSumWith returns int64(int32(sum)), reproducing a
//     32-bit result type. Accumulation is always 64-bit.
type Options struct {
	Counter    CounterKind
	MinValue   int
	MaxValue   int
	Truncate32 bool
}

// DefaultOptions returns MapCounter with the default table range and
// widened (untruncated) results.
func DefaultOptions() Options {
	return Options{
		Counter:  MapCounter,
		MinValue: DefaultMinValue,
		MaxValue: DefaultMaxValue,
	}
}

// Span describes one window of the input: Values[Left:Right].
// The zero Span is the empty window with sum 0.
type Span struct {
	Left     int   // first index inside the window
	Right    int   // one past the last index inside the window
	Sum      int64 // sum of the window's values
	Distinct int   // number of distinct values in the window
}

// Len returns the number of elements in the window.
func (s Span) Len() int { return s.Right - s.Left }

// Value returns Sum, truncated to 32 bits when opts.Truncate32 is set.
// A nil opts leaves Sum unchanged.
func (s Span) Value(opts *Options) int64 {
	if opts != nil && opts.Truncate32 {
		return int64(int32(s.Sum))
	}

	return s.Sum
}

// Empty reports whether the window holds no elements.
func (s Span) Empty() bool { return s.Right <= s.Left }
