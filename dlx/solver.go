// Package dlx — Algorithm X search engine over the Dancing Links matrix.
//
// The search is depth-first and purely sequential: cover/uncover mutate
// shared linked state, so exactly one in-flight branch may touch the
// matrix at a time. Every cover performed on the way down is undone on
// the way back up through normal return paths — including the early
// return after the first solution and the unwind after a context
// cancellation — so the matrix is always left fully uncovered.
package dlx

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// engine holds all search state for one Solve call. A dedicated struct
// (rather than closures over Solve locals) keeps the hot path explicit
// and the unwind auditable.
type engine struct {
	m   *Matrix
	log zerolog.Logger

	trace bool // logger accepts trace-level events
	limit int  // stop after this many solutions; 0 = unlimited

	stack     []int   // row identifiers on the current path
	solutions [][]int // completed covers, in discovery order

	ops      uint64
	nodes    uint64
	maxDepth int
}

// record copies the current path into the solution list and reports
// whether the solution cap has been reached.
func (e *engine) record() bool {
	sol := make([]int, len(e.stack))
	copy(sol, e.stack)
	e.solutions = append(e.solutions, sol)

	if e.trace {
		e.log.Trace().Ints("rows", sol).Msg("solution found")
	}

	return e.limit > 0 && len(e.solutions) >= e.limit
}

// search is one level of the backtracking state machine:
// check-done, select-column, cover, try each row (cover its other
// columns left-to-right, recurse, uncover them right-to-left), backtrack.
// It returns stop=true when the solution cap is reached; the caller then
// unwinds its own covers exactly as on a normal backtrack, so stopping
// early still restores the matrix.
func (e *engine) search(ctx context.Context, depth int) (stop bool, err error) {
	if depth > e.maxDepth {
		e.maxDepth = depth
	}

	// Check-done: an empty header ring means every column is covered.
	if e.m.nodes[root].right == root {
		return e.record(), nil
	}

	// Select-column: minimum size, first occurrence wins.
	c := e.m.chooseColumn()
	e.ops++
	if e.m.colSize[c] == 0 {
		return false, nil // dead end: a live column no row can cover
	}
	if e.trace {
		e.log.Trace().Int("depth", depth).Int("column", c).Int("size", e.m.colSize[c]).Msg("select column")
	}

	e.m.cover(c)
	e.ops++

	h := c + 1
	for i := e.m.nodes[h].down; i != h; i = e.m.nodes[i].down {
		// External budget hook: callers cancel between row trials; the
		// loop breaks and the unwind below restores the matrix.
		if err = ctx.Err(); err != nil {
			break
		}

		e.nodes++
		e.stack = append(e.stack, e.m.nodes[i].row)
		if e.trace {
			e.log.Trace().Int("depth", depth).Int("row", e.m.nodes[i].row).Msg("try row")
		}

		// Cover the other columns of this row, left-to-right.
		for j := e.m.nodes[i].right; j != i; j = e.m.nodes[j].right {
			e.m.cover(e.m.nodes[j].col)
			e.ops++
		}

		stop, err = e.search(ctx, depth+1)

		// Undo this row trial in exact reverse: pop the row, uncover its
		// columns right-to-left. Runs on success and cancellation too.
		e.stack = e.stack[:len(e.stack)-1]
		for j := e.m.nodes[i].left; j != i; j = e.m.nodes[j].left {
			e.m.uncover(e.m.nodes[j].col)
			e.ops++
		}

		if stop || err != nil {
			break
		}
	}

	e.m.uncover(c)
	e.ops++

	return stop, err
}

// Solve runs Algorithm X over m and returns the exact covers found.
//
// With opts.FindAll false the search stops at the first solution; with
// it true every solution is enumerated (optionally capped by
// opts.MaxSolutions), in an order fully determined by the matrix build
// sequence. An unsatisfiable instance yields an empty Solutions slice
// and a nil error.
//
// The matrix must be freshly built or left restored by a prior Solve;
// it is restored again before this call returns, whatever the outcome,
// so instances can be solved repeatedly. The first Solve seals the
// matrix against further AddRow calls.
//
// ctx is polled between row trials: on cancellation the search unwinds
// normally (matrix restored) and Solve returns ctx.Err() alongside any
// solutions found up to that point.
//
// Errors: ErrNilMatrix, ErrBadOptions, ErrSolveActive, ErrMatrixDirty,
// or the context's error.
func Solve(ctx context.Context, m *Matrix, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if opts.MaxSolutions < 0 {
		return Result{}, ErrBadOptions
	}
	if m.inSolve {
		return Result{}, ErrSolveActive
	}
	if m.live != m.numColumns {
		return Result{}, ErrMatrixDirty
	}
	m.sealed = true
	m.inSolve = true
	defer func() { m.inSolve = false }()

	limit := 1
	if opts.FindAll {
		limit = opts.MaxSolutions
	}
	e := engine{
		m:     m,
		log:   opts.Logger,
		trace: opts.Logger.GetLevel() <= zerolog.TraceLevel,
		limit: limit,
	}

	start := time.Now()
	_, err := e.search(ctx, 0)

	return Result{
		Solutions: e.solutions,
		Stats: Stats{
			Operations: e.ops,
			Nodes:      e.nodes,
			MaxDepth:   e.maxDepth,
			Duration:   time.Since(start),
		},
	}, err
}
