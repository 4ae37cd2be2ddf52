// Package dlx defines options, results, and statistics for the
// exact-cover solver.
package dlx

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Solve call.
//
// Fields:
//   - FindAll      — enumerate every exact cover instead of stopping at
//     the first one found.
//   - MaxSolutions — when FindAll is true, stop after this many solutions
//     (0 means no cap). Setting it to 2 is the idiomatic uniqueness probe.
//     Ignored when FindAll is false (the cap is implicitly 1).
//   - Logger       — receives trace-level events (column selection, row
//     trials, solutions). Defaults to a no-op logger; pass a logger at
//     trace level to watch the search walk the matrix.
//
// Example:
//
//	opts := dlx.DefaultOptions()
//	opts.FindAll = true
//	opts.MaxSolutions = 2 // "is the solution unique?"
//
//	res, err := dlx.Solve(ctx, m, opts)
type Options struct {
	FindAll      bool
	MaxSolutions int
	Logger       zerolog.Logger
}

// DefaultOptions returns Options with default settings:
// first solution only, no solution cap, no-op logger.
func DefaultOptions() Options {
	return Options{
		FindAll:      false,
		MaxSolutions: 0,
		Logger:       zerolog.Nop(),
	}
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Solutions lists every exact cover found, in discovery order.
	// Each solution is the ordered sequence of row identifiers selected
	// on the path from the search root to the full cover.
	// Empty when the instance is unsatisfiable.
	Solutions [][]int

	// Stats reports search effort for this call.
	Stats Stats
}

// Stats carries per-solve search counters. Informational only; the
// counters do not participate in the algorithm.
type Stats struct {
	// Operations counts cover, uncover, and column-selection steps.
	Operations uint64
	// Nodes counts row trials (one per row tentatively selected).
	Nodes uint64
	// MaxDepth is the deepest recursion level reached (rows stacked).
	MaxDepth int
	// Duration is the wall-clock time spent inside Solve.
	Duration time.Duration
}

// MemoryStats describes the storage backing a Matrix. Informational only.
type MemoryStats struct {
	// Nodes is the total arena length: root sentinel, one header per
	// column, and one node per 1-entry added so far.
	Nodes int
	// Columns is the column count fixed at construction.
	Columns int
	// Bytes estimates the resident size of the arena and column table.
	Bytes int
}
