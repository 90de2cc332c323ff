// SPDX-License-Identifier: MIT
// Package matrix: transpose, determinant, cofactor matrix and inverse.
//
// Purpose:
//   - Determinant by Laplace (cofactor) expansion along the first column,
//     with closed forms for 1×1 and 2×2.
//   - CalcComplements and Inverse are built from the same minor/determinant
//     primitives; the inverse is adjugate / determinant.
//
// Notes:
//   - Expansion is O(n!) and performs no pivoting. A matrix whose rows or
//     columns cancel exactly yields a determinant of exactly 0 without any
//     special-casing, which is what Inverse relies on to report ErrSingular.

package matrix

// ZeroPivot is the determinant value that marks a matrix as singular.
// The comparison is exact; no tolerance is applied.
const ZeroPivot = 0.0

const (
	opDeterminant = "Determinant"
	opComplements = "CalcComplements"
	opInverse     = "Inverse"
)

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The receiver is never mutated; the empty matrix transposes to itself.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	res := newDense(m.c, m.r)
	if res.data == nil {
		return res
	}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// minor returns the (r-1)×(c-1) matrix left after deleting row and col,
// keeping the relative order of the remaining cells.
// Callers guarantee a valid matrix of at least 2×2 and in-range indices.
//
// Complexity: O(r*c).
func (m *Dense) minor(row, col int) *Dense {
	res := newDense(m.r-1, m.c-1)
	var i, j, base int
	dst := 0
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}

// det is the recursive expansion on a validated non-empty square matrix.
func (m *Dense) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}

	acc := ZeroSum
	sign := 1.0
	for i := 0; i < m.r; i++ {
		acc += sign * m.data[i*m.c] * m.minor(i, 0).det()
		sign = -sign
	}

	return acc
}

// Determinant computes det(m) by cofactor expansion along the first column.
// MAIN DESCRIPTION:
//   - 1×1: the single cell; 2×2: a·d − b·c;
//     n×n: Σ_i (−1)^i · m[i,0] · det(minor(i,0)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (empty matrix).
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
//
// Notes:
//   - Intended for small matrices; there is no elimination or pivoting.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// cofactors builds the signed minor-determinant matrix of a validated
// non-empty square matrix. A 1×1 matrix has the single cofactor 1.
func (m *Dense) cofactors() *Dense {
	res := newDense(m.r, m.c)
	if m.r == 1 {
		res.data[0] = 1.0
		return res
	}
	var i, j int
	var sign float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			sign = 1.0
			if (i+j)%2 != 0 {
				sign = -1.0
			}
			res.data[i*m.c+j] = sign * m.minor(i, j).det()
		}
	}

	return res
}

// CalcComplements returns the cofactor (complement) matrix:
// result[i,j] = (−1)^(i+j) · det(minor(i,j)). A 1×1 input yields [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (empty matrix).
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) CalcComplements() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}

	return m.cofactors(), nil
}

// Inverse returns m⁻¹ = transpose(CalcComplements(m)) / det(m).
// Implementation:
//   - Stage 1: compute the determinant (validates squareness).
//   - Stage 2: reject an exactly-zero determinant with ErrSingular.
//   - Stage 3: 1×1 → [[1/det]]; otherwise divide the adjugate cell-wise.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (from Determinant).
//   - ErrSingular when det(m) == 0 exactly.
//
// Complexity:
//   - Dominated by the cofactor matrix, O(n^2 · (n-1)!).
func (m *Dense) Inverse() (*Dense, error) {
	d, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if d == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if m.r == 1 {
		res := newDense(1, 1)
		res.data[0] = 1 / d
		return res, nil
	}

	adj := m.cofactors().Transpose()
	for idx := range adj.data {
		adj.data[idx] /= d
	}

	return adj, nil
}

// InverseMatrix is an alias for Inverse.
func (m *Dense) InverseMatrix() (*Dense, error) { return m.Inverse() }
