// Package matrix_test contains unit tests for equality and arithmetic kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// ---------- Equal ----------

func TestEqual(t *testing.T) {
	a := Sequence(t, 2, 2, 1)

	t.Run("same values", func(t *testing.T) {
		require.True(t, a.Equal(a.Clone()))
		require.True(t, a.EqMatrix(a.Clone()))
		require.True(t, matrix.Equal(a, a.Clone()))
	})

	t.Run("within tolerance", func(t *testing.T) {
		b := a.Clone()
		MustSet(t, b, 1, 1, 4+1e-8)
		require.True(t, a.Equal(b))
	})

	t.Run("outside tolerance", func(t *testing.T) {
		b := a.Clone()
		MustSet(t, b, 1, 1, 4+1e-6)
		require.False(t, a.Equal(b))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		require.False(t, a.Equal(Sequence(t, 1, 4, 1)))
		require.False(t, a.Equal(MustDense(t, 2, 3)))
	})

	t.Run("NaN never equal", func(t *testing.T) {
		b := a.Clone()
		MustSet(t, b, 0, 0, math.NaN())
		require.False(t, b.Equal(b.Clone()))
	})

	t.Run("nil operands", func(t *testing.T) {
		var nilM *matrix.Dense
		require.False(t, a.Equal(nil))
		require.False(t, nilM.Equal(a))
		require.True(t, matrix.Equal(nil, nil))
	})

	t.Run("empty matrices", func(t *testing.T) {
		var x, y matrix.Dense
		require.True(t, x.Equal(&y))
	})
}

// ---------- Add / Sub ----------

func TestAddSub_Values(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// Operands are never mutated.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, b)
}

func TestSumSubMatrix_InPlace(t *testing.T) {
	m := MustDense(t, 3, 3)
	m.Fill(1)
	two := MustDense(t, 3, 3)
	two.Fill(2)

	require.NoError(t, m.SumMatrix(two))
	want := MustDense(t, 3, 3)
	want.Fill(3)
	require.True(t, m.Equal(want))

	require.NoError(t, m.SubMatrix(two))
	want.Fill(-2)
	require.True(t, m.Equal(want))
}

func TestSubMatrix_SelfAlias(t *testing.T) {
	m := Sequence(t, 2, 2, 1)
	require.NoError(t, m.SubMatrix(m))
	require.True(t, m.Equal(MustDense(t, 2, 2)))
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := Sequence(t, 2, 3, 1)
	b := Sequence(t, 3, 2, 1)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// In-place variants validate before touching the receiver.
	require.ErrorIs(t, a.SumMatrix(b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.SubMatrix(b), matrix.ErrDimensionMismatch)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
}

func TestAddSub_Nil(t *testing.T) {
	a := Sequence(t, 2, 2, 1)
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, a.SumMatrix(nil), matrix.ErrNilMatrix)
}

// TestAddSub_RoundTrip checks A + B - B == A on random data.
func TestAddSub_RoundTrip(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 5; seed++ {
		a := RandFilledDense(t, 4, 6, seed)
		b := RandFilledDense(t, 4, 6, seed+100)

		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		require.True(t, back.Equal(a), "seed %d", seed)
	}
}

// ---------- Scale / MulNumber ----------

func TestScale(t *testing.T) {
	a := FromRows(t, [][]float64{{1, -2}, {0.5, 4}})

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, s)
	CompareExact(t, [][]float64{{1, -2}, {0.5, 4}}, a)

	a.MulNumber(-1)
	CompareExact(t, [][]float64{{-1, 2}, {-0.5, -4}}, a)

	_, err = matrix.Scale(nil, 3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var empty matrix.Dense
	empty.MulNumber(5) // never fails, even without storage
	require.True(t, empty.IsEmpty())
}

// ---------- Mul / MulMatrix ----------

func TestMul_Rectangular(t *testing.T) {
	a := Sequence(t, 4, 3, 1)  // {1..12}
	b := Sequence(t, 3, 2, 13) // {13..18}

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{94, 100},
		{229, 244},
		{364, 388},
		{499, 532},
	}, c)

	// Compound form produces the same result and reshapes the receiver.
	require.NoError(t, a.MulMatrix(b))
	require.True(t, a.Equal(c))
}

func TestMulMatrix_Self(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.MulMatrix(m))
	CompareExact(t, [][]float64{{7, 10}, {15, 22}}, m)
}

func TestMul_Identity(t *testing.T) {
	a := RandFilledDense(t, 5, 5, 7)
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 1, 8)
	b := MustDense(t, 2, 3)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, a.MulMatrix(b), matrix.ErrDimensionMismatch)
	MustDims(t, a, 1, 8)

	sq := Sequence(t, 2, 3, 1)
	require.ErrorIs(t, sq.MulMatrix(sq), matrix.ErrDimensionMismatch)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, sq)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_ErrorMessage(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 1, 8), MustDense(t, 2, 3))
	require.EqualError(t, err, "Mul: ValidateMulCompatible: 1x8 * 2x3: matrix: dimension mismatch")
}

func TestEmptyArithmetic(t *testing.T) {
	var a, b matrix.Dense

	sum, err := matrix.Add(&a, &b)
	require.NoError(t, err)
	require.True(t, sum.IsEmpty())

	prod, err := matrix.Mul(&a, &b)
	require.NoError(t, err)
	MustDims(t, prod, 0, 0)
}
