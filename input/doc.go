// Package input reads and writes the line-oriented problem format:
//
//	N          line 1: element count (≥ 0)
//	k          line 2: distinct-value bound
//	A[0]       lines 3..N+2: one integer per line
//	...
//
// Every line is trimmed of surrounding whitespace before conversion.
// Lines after A[N-1] are ignored. Malformed input never yields a zero
// value silently: every failure is a *LineError matching ErrInputParse.
package input
