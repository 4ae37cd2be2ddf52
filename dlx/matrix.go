// Package dlx — sparse constraint matrix (Dancing Links storage).
//
// The matrix is an arena of nodes addressed by stable integer indices.
// All four-way links are indices into the arena, so the cyclic structure
// carries no ownership at all: the arena owns every node and links are
// plain relational data.
package dlx

import "fmt"

// root is the arena index of the sentinel header; it anchors the circular
// ring of live column headers and plays no data role.
const root = 0

// headerRow marks header and root nodes, which belong to no caller row.
const headerRow = -1

// node is one 1-entry of the matrix, or a column header, or the root
// sentinel. Headers occupy arena slots 1..numColumns (header of column c
// at slot c+1); data nodes follow in insertion order.
type node struct {
	left, right int // horizontal ring: row cycle, or header ring for headers
	up, down    int // vertical ring: column cycle threaded through the header
	col         int // owning column index; -1 for the root sentinel
	row         int // caller row identifier; headerRow for headers and root
}

// Matrix is a 0/1 constraint matrix in Dancing Links form.
//
// Build it once with NewMatrix and a sequence of AddRow calls, then hand
// it to Solve. Solve mutates the rings in place during search and always
// restores them before returning, so a Matrix can be solved repeatedly.
// A Matrix must not be shared between concurrent Solve calls.
type Matrix struct {
	nodes      []node
	colSize    []int       // live node count per column
	numColumns int
	live       int         // columns currently reachable from the root ring
	rowRef     map[int]int // row identifier -> first node of its row ring
	sealed     bool        // set once the first Solve starts; AddRow refuses after
	inSolve    bool        // re-entrancy guard for Solve
}

// NewMatrix allocates a matrix with numColumns empty columns: the root
// sentinel and all headers linked into one circular horizontal ring in
// ascending column order, every vertical ring containing only its header.
// numColumns may be zero — that is the trivially satisfied instance.
// Returns ErrNegativeColumns for a negative count.
// Complexity: O(numColumns) time and memory.
func NewMatrix(numColumns int) (*Matrix, error) {
	if numColumns < 0 {
		return nil, fmt.Errorf("dlx: NewMatrix(%d): %w", numColumns, ErrNegativeColumns)
	}

	m := &Matrix{
		nodes:      make([]node, numColumns+1),
		colSize:    make([]int, numColumns),
		numColumns: numColumns,
		live:       numColumns,
		rowRef:     make(map[int]int),
	}

	// Slot 0 is the root, slots 1..numColumns the headers; the ring wraps
	// modulo numColumns+1 so the root sits between the last and first header.
	ring := numColumns + 1
	for i := 0; i < ring; i++ {
		m.nodes[i] = node{
			left:  (i - 1 + ring) % ring,
			right: (i + 1) % ring,
			up:    i,
			down:  i,
			col:   i - 1,
			row:   headerRow,
		}
	}

	return m, nil
}

// AddRow splices one row into the matrix: one new node per listed column,
// appended at the bottom of that column's vertical ring, all new nodes
// closed into one horizontal ring in caller order. rowID is an opaque
// label echoed back in solutions; it need not be contiguous or ordered.
//
// An empty columns slice is a no-op: no node is spliced and rowID is not
// registered (such a row could never be selected by the search anyway).
//
// The call validates before it splices, so on any error the matrix is
// exactly as it was: ErrMatrixSealed after a solve has started,
// ErrDuplicateRow for a reused rowID, ErrColumnRange and
// ErrDuplicateColumn for a malformed column set.
// Complexity: O(len(columns)) time.
func (m *Matrix) AddRow(rowID int, columns []int) error {
	if m.sealed {
		return fmt.Errorf("dlx: AddRow(%d): %w", rowID, ErrMatrixSealed)
	}
	if len(columns) == 0 {
		return nil
	}
	if _, dup := m.rowRef[rowID]; dup {
		return fmt.Errorf("dlx: AddRow(%d): %w", rowID, ErrDuplicateRow)
	}
	seen := make(map[int]struct{}, len(columns))
	for _, c := range columns {
		if c < 0 || c >= m.numColumns {
			return fmt.Errorf("dlx: AddRow(%d): column %d: %w", rowID, c, ErrColumnRange)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("dlx: AddRow(%d): column %d: %w", rowID, c, ErrDuplicateColumn)
		}
		seen[c] = struct{}{}
	}

	first := len(m.nodes)
	for _, c := range columns {
		idx := len(m.nodes)
		h := c + 1
		last := m.nodes[h].up // current bottom of the column

		m.nodes = append(m.nodes, node{
			left:  idx - 1,
			right: idx + 1,
			up:    last,
			down:  h,
			col:   c,
			row:   rowID,
		})
		m.nodes[last].down = idx
		m.nodes[h].up = idx
		m.colSize[c]++
	}
	// Close the horizontal ring over the nodes spliced by this call.
	end := len(m.nodes) - 1
	m.nodes[end].right = first
	m.nodes[first].left = end
	m.rowRef[rowID] = first

	return nil
}

// NumColumns returns the column count fixed at construction.
func (m *Matrix) NumColumns() int { return m.numColumns }

// MemoryStats reports the arena size and a byte estimate. Informational
// only; nothing in the search reads it.
func (m *Matrix) MemoryStats() MemoryStats {
	const (
		bytesPerNode   = 48 // six 8-byte link/label fields
		bytesPerColumn = 8  // size counter
	)

	return MemoryStats{
		Nodes:   len(m.nodes),
		Columns: m.numColumns,
		Bytes:   len(m.nodes)*bytesPerNode + m.numColumns*bytesPerColumn,
	}
}

// cover removes column c from the header ring, then unlinks every other
// node of every row touching c from its own column's vertical ring,
// decrementing that column's size. Rows are visited top-to-bottom and
// nodes within a row left-to-right; uncover relies on that exact order.
func (m *Matrix) cover(c int) {
	h := c + 1
	m.nodes[m.nodes[h].left].right = m.nodes[h].right
	m.nodes[m.nodes[h].right].left = m.nodes[h].left
	m.live--

	for i := m.nodes[h].down; i != h; i = m.nodes[i].down {
		for j := m.nodes[i].right; j != i; j = m.nodes[j].right {
			m.nodes[m.nodes[j].up].down = m.nodes[j].down
			m.nodes[m.nodes[j].down].up = m.nodes[j].up
			m.colSize[m.nodes[j].col]--
		}
	}
}

// uncover is the exact mirror of cover: rows bottom-to-top, nodes within
// a row right-to-left, restoring each node into its vertical ring before
// relinking the header. Out-of-order restoration would resurrect nodes
// that a later cover removed, so the order here is not negotiable.
func (m *Matrix) uncover(c int) {
	h := c + 1
	for i := m.nodes[h].up; i != h; i = m.nodes[i].up {
		for j := m.nodes[i].left; j != i; j = m.nodes[j].left {
			m.colSize[m.nodes[j].col]++
			m.nodes[m.nodes[j].up].down = j
			m.nodes[m.nodes[j].down].up = j
		}
	}
	m.nodes[m.nodes[h].left].right = h
	m.nodes[m.nodes[h].right].left = h
	m.live++
}

// chooseColumn returns the live column with the smallest size, first
// occurrence winning ties, scanning the header ring in current order.
// This is the minimum-remaining-values heuristic; the first-wins
// tiebreak keeps solution order deterministic. A size-zero column is
// returned immediately — it is the global minimum and a dead end the
// caller must handle. Requires a non-empty header ring.
func (m *Matrix) chooseColumn() int {
	best, bestSize := -1, int(^uint(0)>>1)
	for h := m.nodes[root].right; h != root; h = m.nodes[h].right {
		if sz := m.colSize[h-1]; sz < bestSize {
			best, bestSize = h-1, sz
			if sz == 0 {
				break
			}
		}
	}

	return best
}
