// SPDX-License-Identifier: MIT

// Package matrix provides Dense, an owned row-major matrix of float64 values
// with the classic linear-algebra operation set.
//
// The package offers:
//
//   - Construction and lifecycle: NewDense, NewDenseFromRows, NewIdentity,
//     Clone/CopyFrom (deep copy), MoveFrom (ownership transfer), Reset, and
//     SetRows/SetCols resizing that preserves the overlapping submatrix.
//   - Bounds-checked access: At, Set and Ref share a single range check and
//     report ErrOutOfRange instead of panicking.
//   - Arithmetic: in-place SumMatrix/SubMatrix/MulNumber/MulMatrix and
//     value-producing Add/Sub/Scale/Mul.
//   - Linear algebra: Transpose, Determinant (recursive cofactor expansion
//     along the first column), CalcComplements and Inverse (adjugate over
//     determinant).
//
// Equality compares shapes first and then every cell within Epsilon (1e-7).
// Singularity is detected with an exact comparison against ZeroPivot.
//
// The determinant is computed by Laplace expansion, O(n!) in the matrix
// order. Dense targets small matrices; for large systems use a factorization
// based library.
//
// A Dense is not safe for concurrent mutation. Distinct values never share
// storage.
package matrix
