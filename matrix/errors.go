// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with call-site
// context) and callers match them via errors.Is. No operation panics on a
// user-triggered error condition.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Sentinels
// are wrapped with fmt.Errorf("ctx: %w", ErrX) at the detection site so the
// message carries the operation name while errors.Is keeps working.

var (
	// ErrInvalidDimensions is returned when a requested extent is non-positive
	// (construction, resize) or an operation needs a non-empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Ref) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
