package dlx

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// VerifySolution independently certifies that rows is an exact cover:
// the union of the rows' column sets must contain every column exactly
// once. It walks each row's horizontal ring — rings are never broken by
// cover/uncover, so verification is valid at any time, including against
// solutions of an earlier Solve call.
//
// Returns nil for a valid cover, otherwise ErrUnknownRow, ErrDoubleCover,
// or ErrIncompleteCover wrapped with the offending row or column.
// Complexity: O(ones in the selected rows + numColumns).
func (m *Matrix) VerifySolution(rows []int) error {
	covered := bitset.New(uint(m.numColumns))

	for _, id := range rows {
		first, ok := m.rowRef[id]
		if !ok {
			return fmt.Errorf("dlx: VerifySolution: row %d: %w", id, ErrUnknownRow)
		}
		j := first
		for {
			c := uint(m.nodes[j].col)
			if covered.Test(c) {
				return fmt.Errorf("dlx: VerifySolution: row %d, column %d: %w", id, c, ErrDoubleCover)
			}
			covered.Set(c)
			j = m.nodes[j].right
			if j == first {
				break
			}
		}
	}

	if n := int(covered.Count()); n != m.numColumns {
		c, _ := covered.NextClear(0)

		return fmt.Errorf("dlx: VerifySolution: column %d: %w", c, ErrIncompleteCover)
	}

	return nil
}
