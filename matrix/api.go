// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, function-style entry points next to the Dense methods so
//     call sites can compose operations without a receiver.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     method and only adds the nil guard a receiver cannot express.

package matrix

const opTranspose = "Transpose"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// IdentityLike returns I with dimension = Rows(m); requires a square, non-empty m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// Equal reports whether a and b are equal within Epsilon (see Dense.Equal).
func Equal(a, b *Dense) bool { return a.Equal(b) }

// Transpose returns mᵀ as a new matrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Determinant returns det(m); see Dense.Determinant.
func Determinant(m *Dense) (float64, error) { return m.Determinant() }

// Complements returns the cofactor matrix of m; see Dense.CalcComplements.
func Complements(m *Dense) (*Dense, error) { return m.CalcComplements() }

// Inverse returns m⁻¹; see Dense.Inverse.
func Inverse(m *Dense) (*Dense, error) { return m.Inverse() }
