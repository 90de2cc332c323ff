// SPDX-License-Identifier: MIT
// Package matrix: equality and element-wise / product arithmetic on Dense.
//
// Purpose:
//   - In-place kernels (SumMatrix, SubMatrix, MulNumber, MulMatrix) play the
//     role of compound assignment; Add, Sub, Scale and Mul produce new values.
//   - Every kernel validates operands before writing a single cell.
//
// Determinism:
//   - Flat 0..n-1 loops for element-wise kernels; fixed i→k→j for products.

package matrix

import (
	"fmt"
	"math"
)

// Epsilon is the absolute per-cell tolerance used by Equal.
const Epsilon = 1e-7

// ZeroSum is the initial value for accumulations (products, expansions).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opSumMatrix = "SumMatrix"
	opSubMatrix = "SubMatrix"
	opMulMatrix = "MulMatrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether m and other have the same shape and every pair of
// cells differs by at most Epsilon.
//
// Behavior highlights:
//   - Never fails: a shape mismatch is simply false.
//   - NaN cells never compare equal.
//   - Two nil matrices are equal; nil and non-nil are not.
//
// Complexity: O(r*c), early exit on first difference.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		// The negated form also rejects NaN differences.
		if !(math.Abs(m.data[idx]-other.data[idx]) <= Epsilon) {
			return false
		}
	}

	return true
}

// EqMatrix is an alias for Equal.
func (m *Dense) EqMatrix(other *Dense) bool { return m.Equal(other) }

// addSub computes out = a + sign*b into a fresh matrix for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// addSubInPlace computes m = m + sign*o. Validation precedes any write, so a
// failed call leaves the receiver untouched.
func (m *Dense) addSubInPlace(o *Dense, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * o.data[idx]
	}

	return nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// SumMatrix adds o to the receiver in place (m += o).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is left untouched.
func (m *Dense) SumMatrix(o *Dense) error { return m.addSubInPlace(o, +1, opSumMatrix) }

// SubMatrix subtracts o from the receiver in place (m -= o).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is left untouched.
func (m *Dense) SubMatrix(o *Dense) error { return m.addSubInPlace(o, -1, opSubMatrix) }

// MulNumber scales every cell of the receiver by k in place. Never fails.
// Complexity: O(r*c).
func (m *Dense) MulNumber(k float64) {
	for idx := range m.data {
		m.data[idx] *= k
	}
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix only; any non-nil matrix (including the empty one) scales.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	res.MulNumber(alpha)

	return res, nil
}

// mul is the product kernel; callers validate compatibility first.
// Implementation:
//   - i→k→j with row-major strides: each a[i,k] is read once and streamed
//     across row k of b into row i of the result.
//
// Behavior highlights:
//   - For every (i,j) the terms are accumulated in increasing k, exactly as the
//     textbook Σ_k a[i,k]·b[k,j].
//   - Writes only into a freshly allocated buffer, so a and b may alias.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mul(a, b *Dense) *Dense {
	res := newDense(a.r, b.c)
	if res.data == nil {
		return res
	}
	var (
		i, k, j                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Run the i→k→j kernel into a new (A.Rows × B.Cols) matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// MulMatrix replaces the receiver with the product m × o (m *= o).
// The full product is computed into a separate buffer and swapped in only
// when complete, so m.MulMatrix(m) squares a square matrix correctly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the receiver is left untouched.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) MulMatrix(o *Dense) error {
	if err := ValidateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMulMatrix, err)
	}
	prod := mul(m, o)
	m.r, m.c, m.data = prod.r, prod.c, prod.data

	return nil
}
