// Package exactcover is a small, deterministic toolkit for exact-cover
// problems, built around Knuth's Algorithm X with Dancing Links.
//
// 🚀 What is exactcover?
//
//	A pure-Go solver core for the exact-cover problem: given a 0/1
//	constraint matrix, pick a subset of rows so that every column is
//	covered exactly once.
//		• Sparse matrix: four-way circular doubly-linked arena, built
//		  declaratively one row at a time
//		• Search: Algorithm X with the minimum-remaining-values column
//		  heuristic, first or all solutions
//		• Fully deterministic: fixed insertion order ⇒ fixed solution order
//		• Restorable: the matrix is returned to its pristine state after
//		  every solve, so instances can be solved repeatedly
//
// ✨ Why choose exactcover?
//
//   - Minimal API — build a matrix, call Solve, read row identifiers back
//   - Hardened construction — malformed rows are rejected before any splice
//   - Observable — per-solve statistics, optional zerolog trace events
//   - Pure Go — no cgo
//
// Everything lives under one subpackage:
//
//	dlx/ — sparse constraint matrix, Algorithm X engine, solution verifier
//
// Exact cover is the substrate beneath many placement puzzles (polyomino
// packing, sudoku, n-queens): callers translate their domain constraints
// into column indices, attach an opaque row identifier per candidate
// choice, and translate the returned identifiers back.
//
//	go get github.com/katalvlaran/exactcover/dlx
package exactcover
