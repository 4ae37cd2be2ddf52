package dlx

import "errors"

// Sentinel errors for matrix construction, solving, and verification.
var (
	// ErrNegativeColumns indicates NewMatrix was called with a negative column count.
	ErrNegativeColumns = errors.New("dlx: number of columns must be non-negative")
	// ErrColumnRange indicates a row references a column outside 0..numColumns-1.
	ErrColumnRange = errors.New("dlx: column index out of range")
	// ErrDuplicateColumn indicates the same column appears twice in one AddRow call.
	ErrDuplicateColumn = errors.New("dlx: duplicate column within a single row")
	// ErrDuplicateRow indicates a row identifier was already used by an earlier AddRow call.
	ErrDuplicateRow = errors.New("dlx: duplicate row identifier")
	// ErrMatrixSealed indicates AddRow was called after the first Solve had started.
	ErrMatrixSealed = errors.New("dlx: rows cannot be added once solving has started")
	// ErrSolveActive indicates Solve was re-entered on a matrix with a search in flight.
	ErrSolveActive = errors.New("dlx: a solve is already in progress on this matrix")
	// ErrMatrixDirty indicates Solve was called on a matrix not in its fully-uncovered state.
	ErrMatrixDirty = errors.New("dlx: matrix is not in its fully uncovered state")
	// ErrNilMatrix indicates Solve was called with a nil matrix.
	ErrNilMatrix = errors.New("dlx: matrix must not be nil")
	// ErrBadOptions indicates an invalid Options field (negative MaxSolutions).
	ErrBadOptions = errors.New("dlx: invalid solver options")

	// ErrUnknownRow indicates a solution references a row identifier never added.
	ErrUnknownRow = errors.New("dlx: solution references an unknown row identifier")
	// ErrDoubleCover indicates a solution covers some column more than once.
	ErrDoubleCover = errors.New("dlx: column covered more than once")
	// ErrIncompleteCover indicates a solution leaves some column uncovered.
	ErrIncompleteCover = errors.New("dlx: column left uncovered")
)
