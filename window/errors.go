// SPDX-License-Identifier: MIT
// Package: kdistinct/window
//
// errors.go — sentinel errors for the window package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (index, value, range) is attached with %w at the return site.
//   • Option and range errors are reported before the first element is
//     counted; the scan itself fails only on int64 overflow.

package window

import "errors"

// ErrValueRange indicates an input value falls outside the range a
// TableCounter was sized for.
// Usage: if errors.Is(err, ErrValueRange) { /* widen range or use MapCounter */ }.
var ErrValueRange = errors.New("window: value outside counter range")

// ErrBadOptions indicates meaningless Options: unknown counter kind,
// MinValue > MaxValue, or a table range too large to allocate.
var ErrBadOptions = errors.New("window: invalid options")

// ErrSumOverflow indicates a running window sum left the int64 range.
// Only reachable with values near the int64 limits; the default table range
// keeps every window sum representable for N below 2^46.
var ErrSumOverflow = errors.New("window: window sum overflows int64")
