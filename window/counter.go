package window

import "fmt"

// counter tracks how often each value occurs in the current window.
// add reports a 0→1 transition; remove reports a 1→0 transition.
type counter interface {
	add(v int) bool
	remove(v int) bool
}

// mapCounter drops keys whose count reaches zero, so len(m) is the
// distinct count.
type mapCounter map[int]int

func (m mapCounter) add(v int) bool {
	m[v]++

	return m[v] == 1
}

func (m mapCounter) remove(v int) bool {
	m[v]--
	if m[v] == 0 {
		delete(m, v)

		return true
	}

	return false
}

// tableCounter indexes counts by v-min. Callers guarantee min <= v <= max.
type tableCounter struct {
	min    int
	counts []int
}

func (t *tableCounter) add(v int) bool {
	i := v - t.min
	t.counts[i]++

	return t.counts[i] == 1
}

func (t *tableCounter) remove(v int) bool {
	i := v - t.min
	t.counts[i]--

	return t.counts[i] == 0
}

// newCounter validates opts against a and builds the requested counter.
// For TableCounter every value is range-checked before anything is
// allocated, so the scan can index without bounds surprises.
//
// Complexity: O(1) for MapCounter; O(N + range) for TableCounter.
func newCounter(a []int, opts Options) (counter, error) {
	switch opts.Counter {
	case MapCounter:
		return make(mapCounter), nil
	case TableCounter:
		// handled below
	default:
		return nil, fmt.Errorf("counter %v: %w", opts.Counter, ErrBadOptions)
	}

	if opts.MinValue > opts.MaxValue {
		return nil, fmt.Errorf("range [%d, %d]: %w", opts.MinValue, opts.MaxValue, ErrBadOptions)
	}
	width := int64(opts.MaxValue) - int64(opts.MinValue) + 1
	if width <= 0 || width > maxTableLen {
		return nil, fmt.Errorf("range [%d, %d] exceeds %d slots: %w",
			opts.MinValue, opts.MaxValue, maxTableLen, ErrBadOptions)
	}

	for i, v := range a {
		if v < opts.MinValue || v > opts.MaxValue {
			return nil, fmt.Errorf("A[%d]=%d not in [%d, %d]: %w",
				i, v, opts.MinValue, opts.MaxValue, ErrValueRange)
		}
	}

	return &tableCounter{min: opts.MinValue, counts: make([]int, width)}, nil
}
