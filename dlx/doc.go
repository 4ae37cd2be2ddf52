// Package dlx solves exact-cover problems with Knuth's Algorithm X over
// a Dancing Links sparse matrix.
//
// What:
//
//   - Matrix stores a 0/1 constraint matrix as an arena of nodes threaded
//     into four-way circular doubly-linked lists (one vertical ring per
//     column through its header, one horizontal ring per row).
//   - AddRow splices one row at a time; construction is hardened — bad
//     input is rejected before any link is touched.
//   - Solve runs the backtracking search, returning the first or all
//     selections of rows that cover every column exactly once.
//   - VerifySolution independently certifies a returned selection.
//
// Why:
//
//   - Tiling and placement puzzles: polyomino packing, sudoku, n-queens.
//   - Scheduling and partitioning: any "pick options so each constraint
//     is met exactly once" formulation.
//
// Determinism:
//
//   - Column choice is minimum size, first occurrence wins, scanning the
//     live header ring in original left-to-right order; rows inside a
//     column are tried in insertion order. For a fixed build sequence the
//     solutions and their discovery order are fully reproducible.
//
// Complexity:
//
//   - Build: O(ones) time and memory (one node per 1-entry).
//   - Search: exponential worst case (the problem is NP-complete); the
//     minimum-size heuristic prunes aggressively in practice.
//   - Recursion depth ≤ number of columns; every level covers a column.
//
// Errors:
//
//   - ErrNegativeColumns: NewMatrix called with a negative column count.
//   - ErrColumnRange: AddRow column index outside 0..numColumns-1.
//   - ErrDuplicateColumn: the same column twice within one AddRow call.
//   - ErrDuplicateRow: a row identifier used by an earlier AddRow call.
//   - ErrMatrixSealed: AddRow after the first Solve has started.
//   - ErrSolveActive: Solve re-entered on a matrix mid-search.
//   - ErrMatrixDirty: Solve on a matrix not in its fully-uncovered state.
//   - ErrNilMatrix, ErrBadOptions: malformed Solve arguments.
//   - ErrUnknownRow, ErrDoubleCover, ErrIncompleteCover: VerifySolution
//     verdicts for an invalid certificate.
//
// An unsatisfiable instance is not an error: Solve returns an empty
// solution set and a nil error.
package dlx
