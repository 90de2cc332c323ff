// Package densemat is a small dense-matrix toolkit for Go.
//
// What is inside:
//
//	matrix/           Dense, an owned row-major float64 matrix with
//	                    bounds-checked access, resizing, arithmetic,
//	                    transpose, determinant, cofactor matrix and inverse
//	matrix/gonumconv/ copy conversions to and from gonum's mat types
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 4, 6}, {2, 8, 6}, {4, 4, 8}})
//	d, _ := m.Determinant() // -32
//	inv, err := m.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// det(m) == 0
//	}
//
// Design notes:
//
//   - Pure Go with no runtime dependencies in matrix/; gonum is only pulled
//     in by gonumconv.
//   - Every user-triggered failure is a sentinel error (matched with
//     errors.Is); nothing panics on bad input.
//   - The determinant uses cofactor expansion and is meant for small
//     matrices.
package densemat
