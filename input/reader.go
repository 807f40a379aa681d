package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPrealloc bounds the initial Values capacity so a huge declared N
// cannot force a large allocation before its lines actually arrive.
const maxPrealloc = 1 << 16

// Problem is one parsed instance.
type Problem struct {
	N      int   // declared element count; always len(Values) after Read
	K      int   // distinct-value bound, may be zero or negative
	Values []int // the sequence A
}

// Read parses a Problem from r.
//
// Errors: *LineError wrapping ErrMissingLine, ErrNegativeCount,
// a *strconv.NumError, or the underlying read error.
func Read(r io.Reader) (Problem, error) {
	lr := &lineReader{br: bufio.NewReader(r)}

	n, err := lr.int("N")
	if err != nil {
		return Problem{}, err
	}
	if n < 0 {
		return Problem{}, &LineError{Line: lr.line, Field: "N", Err: ErrNegativeCount}
	}
	k, err := lr.int("k")
	if err != nil {
		return Problem{}, err
	}

	values := make([]int, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := lr.int(fmt.Sprintf("A[%d]", i))
		if err != nil {
			return Problem{}, err
		}
		values = append(values, v)
	}

	return Problem{N: n, K: k, Values: values}, nil
}

// Parse is Read over a string.
func Parse(s string) (Problem, error) {
	return Read(strings.NewReader(s))
}

// Encode writes p in the format Read accepts. N is taken from
// len(p.Values), not p.N.
func (p Problem) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(p.Values))
	fmt.Fprintln(bw, p.K)
	for _, v := range p.Values {
		fmt.Fprintln(bw, v)
	}

	return bw.Flush()
}

// lineReader hands out trimmed lines of unbounded length and counts them.
type lineReader struct {
	br   *bufio.Reader
	line int
}

// next returns the next line with surrounding whitespace removed.
// A final line without a trailing newline is still a line.
func (lr *lineReader) next() (string, error) {
	lr.line++
	s, err := lr.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if s == "" {
			return "", ErrMissingLine
		}
	}

	return strings.TrimSpace(s), nil
}

// int reads the next line as a base-10 integer.
func (lr *lineReader) int(field string) (int, error) {
	s, err := lr.next()
	if err != nil {
		return 0, &LineError{Line: lr.line, Field: field, Err: err}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &LineError{Line: lr.line, Field: field, Err: err}
	}

	return v, nil
}
