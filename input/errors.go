package input

import (
	"errors"
	"fmt"
)

var (
	// ErrInputParse is matched by every parse failure.
	ErrInputParse = errors.New("input: parse error")

	// ErrMissingLine indicates the input ended before all N+2 lines were read.
	ErrMissingLine = errors.New("input: missing line")

	// ErrNegativeCount indicates N < 0.
	ErrNegativeCount = errors.New("input: negative element count")
)

// LineError locates a parse failure. It matches both ErrInputParse and
// its cause under errors.Is.
type LineError struct {
	Line  int    // 1-based line number
	Field string // "N", "k" or "A[i]"
	Err   error  // cause: ErrMissingLine, ErrNegativeCount, *strconv.NumError, or an I/O error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("input: line %d (%s): %v", e.Line, e.Field, e.Err)
}

// Unwrap exposes ErrInputParse and the cause.
func (e *LineError) Unwrap() []error {
	return []error{ErrInputParse, e.Err}
}
