// SPDX-License-Identifier: MIT

// Package gonumconv converts between matrix.Dense and gonum's mat types.
//
// Both sides are row-major float64 buffers, so conversion is a single copy
// in either direction. The results never share storage with their source.
package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - matrix.ErrInvalidDimensions when m is empty (gonum has no 0×0 Dense).
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("ToGonum: %w", matrix.ErrInvalidDimensions)
	}

	// Data returns a fresh copy, so gonum may take ownership of it.
	return mat.NewDense(m.Rows(), m.Cols(), m.Data()), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense, reading cells
// through the mat.Matrix interface so views and transposes work too.
//
// Errors:
//   - matrix.ErrNilMatrix when g is nil.
//   - matrix.ErrInvalidDimensions when g has a zero extent.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			// Indices come from g.Dims(), so Set cannot go out of range.
			_ = m.Set(i, j, g.At(i, j))
		}
	}

	return m, nil
}
