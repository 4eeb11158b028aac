package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2}, {3, 4}})
	b := mustInts(t, [][]int64{{0, 1}, {1, 0}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "[[2, 1],\n [4, 3]]", c.String())

	_, err = matrix.Mul(a, mustInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulVec(t *testing.T) {
	a := mustInts(t, [][]int64{{2, 1}, {1, 3}})
	y, err := matrix.MulVec(a, matrix.Vector{rational.FromInt(1), rational.MustNew(1, 2)})
	require.NoError(t, err)
	require.Equal(t, "[5/2, 5/2]", y.String())

	_, err = matrix.MulVec(a, matrix.NewVectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeAndAugment(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, "[[1, 4],\n [2, 5],\n [3, 6]]", at.String())

	aug, err := matrix.Augment(a, matrix.NewVectorFromInts(7, 8))
	require.NoError(t, err)
	require.Equal(t, "[[1, 2, 3, 7],\n [4, 5, 6, 8]]", aug.String())

	_, err = matrix.Augment(a, matrix.NewVectorFromInts(7))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSwapRows(t *testing.T) {
	a := mustInts(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, a.SwapRows(0, 2))
	require.Equal(t, "[[5, 6],\n [3, 4],\n [1, 2]]", a.String())
	require.NoError(t, a.SwapRows(1, 1))
	require.ErrorIs(t, a.SwapRows(0, 3), matrix.ErrOutOfRange)
}

func TestVectorHelpers(t *testing.T) {
	v := matrix.NewVectorFromInts(1, 2, 3)
	w := v.Clone()
	w[0] = rational.FromInt(10)
	require.Equal(t, "[1, 2, 3]", v.String())
	require.False(t, v.Equal(w))
	require.True(t, v.Equal(matrix.NewVectorFromInts(1, 2, 3)))

	d, err := v.Dot(matrix.NewVectorFromInts(1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "6", d.String())
	_, err = v.Dot(matrix.NewVectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Equal(t, []float64{1, 2, 3}, v.Float64s())
	require.Len(t, matrix.Zeros(4), 4)

	_, err = matrix.NewVectorFromFloats([]float64{math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNotFinite)
}
