// Package kdistinct finds the largest sum of a contiguous run of integers
// that holds at most k distinct values.
//
// 🚀 What is kdistinct?
//
//	A single-pass sliding-window solver plus the plumbing around it:
//		• window  — the O(N) two-pointer scan, map or fixed-range counters
//		• input   — strict parser for the N / k / one-value-per-line format
//		• seqgen  — deterministic random problems for tests and benchmarks
//		• config  — YAML defaults for the command line tool
//
// Under the hood:
//
//	window/         — MaxSum, MaxSumWith, BestWindow, Options, sentinel errors
//	input/          — Read, Parse, Problem.Encode, LineError
//	seqgen/         — Generate with functional options (WithSeed, WithRange…)
//	config/         — Load, Validate, WindowOptions
//	cmd/kdistinct/  — cobra CLI with zap logging; `kdistinct gen` subcommand
//
// Quick example:
//
//	A = [1, 2, 1, 3], k = 2
//	    └──4──┘          best window [1 2 1], sum 4
//
//	go install github.com/katalvlaran/kdistinct/cmd/kdistinct@latest
package kdistinct
