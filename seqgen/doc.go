// Package seqgen builds deterministic random problems for benchmarks,
// property tests and the `kdistinct gen` command.
//
// Determinism is explicit: the same seed and options always yield the
// same Problem. No time-based sources are used anywhere.
//
//	p, err := seqgen.Generate(1000,
//	    seqgen.WithSeed(7),
//	    seqgen.WithRange(-50, 50),
//	    seqgen.WithAlphabet(6), // at most 6 distinct values
//	    seqgen.WithK(3),
//	)
package seqgen
