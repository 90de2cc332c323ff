// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Give Go value semantics to the lifecycle: Clone/CopyFrom deep-copy,
//     MoveFrom transfers ownership and leaves the source empty, Reset releases.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom: O(r*c); MoveFrom/Reset: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense"
	ctxFromRows = "NewDenseFromRows"
	ctxIdentity = "NewIdentity"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRef      = "Ref"
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers can match it with errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix that exclusively owns its storage.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty matrix: 0×0 with no storage. Storage is absent
// whenever either extent is zero and present, with exactly r*c cells,
// whenever both are positive.
type Dense struct {
	r, c int       // row and column counts (0 only in the empty state)
	data []float64 // contiguous row-major storage (nil when r == 0 || c == 0)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// allocData returns a zero-filled buffer for rows×cols, or nil when either
// extent is zero so the storage invariant holds for every constructor.
func allocData(rows, cols int) []float64 {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	return make([]float64, rows*cols)
}

// newDense is the internal constructor used by kernels whose result shape is
// already known to be legal (non-negative, possibly empty).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: allocData(rows, cols)}
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Validation happens before any allocation.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix with every cell equal to 0.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The empty matrix is the zero value (var m Dense); it is not built here.
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newDense(rows, cols), nil
}

// NewDenseFromRows builds a matrix from a rectangular slice of rows.
// The input is copied; later changes to rows do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	if err := ValidateDims(r, c); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	m := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if err := ValidateDims(n, n); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	id := newDense(n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix holds no storage (either extent is zero).
func (m *Dense) IsEmpty() bool { return m.data == nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set/Ref) wrap it with
//     coordinates and method name, so all three share identical bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Errors:
//   - ErrOutOfRange when row or col is negative or not below its extent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the cell at (row, col) for in-place updates.
// MAIN DESCRIPTION:
//   - Mutable reference access with the same bounds check as At/Set.
//
// Behavior highlights:
//   - The pointer aliases the receiver's storage until the next SetRows,
//     SetCols, MulMatrix, CopyFrom, MoveFrom or Reset on the receiver; after
//     that it refers to the released buffer and writes are no longer visible.
//
// Errors:
//   - ErrOutOfRange when indices are invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Data returns a copy of the row-major backing buffer (nil for an empty matrix).
// Complexity: O(r*c).
func (m *Dense) Data() []float64 {
	if m.data == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Clone returns a deep copy; the two values share no state afterwards.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: m.Data()}
}

// CopyFrom makes the receiver a deep copy of src (copy assignment).
// Copying a matrix onto itself is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil; the receiver is left untouched.
//
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	if src == m {
		return nil
	}
	m.r, m.c, m.data = src.r, src.c, src.Data()

	return nil
}

// MoveFrom transfers ownership of src's storage to the receiver (move
// assignment). The receiver's previous storage is released and src is left
// in the empty state. Moving a matrix onto itself is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil; the receiver is left untouched.
//
// Complexity: O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxMoveFrom, err)
	}
	if src == m {
		return nil
	}
	m.r, m.c, m.data = src.r, src.c, src.data
	src.Reset()

	return nil
}

// Reset releases the storage and returns the matrix to the empty 0×0 state.
func (m *Dense) Reset() {
	m.r, m.c, m.data = 0, 0, nil
}

// Fill adds v to every cell. On a freshly constructed matrix this sets every
// cell to v; on a populated one it shifts all values by v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for idx := range m.data {
		m.data[idx] += v
	}
}

// String renders the matrix rows as lines with comma-separated values.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values formatted with %g into a strings.Builder.
//
// Behavior highlights:
//   - Intended for logs and debugging, not for hot paths.
//   - An empty matrix renders as the empty string.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	if m.data == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
