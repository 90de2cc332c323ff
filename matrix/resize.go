// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	ctxSetRows = "SetRows"
	ctxSetCols = "SetCols"
)

// SetRows changes the row count to rows, keeping the column count.
// MAIN DESCRIPTION:
//   - Resize along the row axis, preserving the overlapping submatrix.
//
// Implementation:
//   - Stage 1: validate rows > 0 before touching any storage.
//   - Stage 2: build the new buffer, copy min(old, new) rows, zero-fill the rest.
//   - Stage 3: swap the new buffer in.
//
// Behavior highlights:
//   - Shrinking keeps the leading rows exactly; growing appends zero rows.
//   - On the empty matrix only the extent is recorded until the column count
//     is positive too, at which point zero-filled storage is allocated.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0; the receiver is left untouched.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) SetRows(rows int) error {
	if rows <= 0 {
		return matrixErrorf(ctxSetRows, fmt.Errorf("rows=%d: %w", rows, ErrInvalidDimensions))
	}
	m.resize(rows, m.c)

	return nil
}

// SetCols changes the column count to cols, keeping the row count.
// Mirrors SetRows along the column axis: min(old, new) columns of every row
// are preserved and new columns are zero-filled.
//
// Errors:
//   - ErrInvalidDimensions when cols <= 0; the receiver is left untouched.
func (m *Dense) SetCols(cols int) error {
	if cols <= 0 {
		return matrixErrorf(ctxSetCols, fmt.Errorf("cols=%d: %w", cols, ErrInvalidDimensions))
	}
	m.resize(m.r, cols)

	return nil
}

// resize rebuilds storage at rows×cols and copies the overlap from the old
// buffer. The receiver's fields are replaced in a single assignment once the
// new buffer is fully populated.
func (m *Dense) resize(rows, cols int) {
	next := allocData(rows, cols)
	if next != nil && m.data != nil {
		keepR, keepC := min(rows, m.r), min(cols, m.c)
		var i int
		for i = 0; i < keepR; i++ {
			copy(next[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
		}
	}
	m.r, m.c, m.data = rows, cols, next
}
