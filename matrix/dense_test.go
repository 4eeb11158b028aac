// Package matrix_test contains unit tests for the exact Dense matrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/stretchr/testify/require"
)

// mustInts builds a Dense from integer rows or fails the test.
func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRowsRagged ensures ragged input is rejected with ErrBadShape.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromInts([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseDefaultZero checks zero initialisation and dimensions.
func TestNewDenseDefaultZero(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.False(t, m.IsSquare())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.True(t, v.IsZero())
		}
	}
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, rational.One()), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At(), Row() and Col().
func TestSetGet(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, m.Set(1, 0, rational.MustNew(7, 2)))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, "7/2", v.String())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, "[7/2, 4]", row.String())

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, "[2, 4]", col.String())
}

// TestCloneIndependence ensures Clone() and ToRows() return deep copies.
func TestCloneIndependence(t *testing.T) {
	m := mustInts(t, [][]int64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, rational.FromInt(9)))

	orig, _ := m.At(0, 0)
	require.Equal(t, "1", orig.String())
	require.False(t, m.Equal(clone))

	rows := m.ToRows()
	rows[1][1] = rational.FromInt(42)
	v, _ := m.At(1, 1)
	require.Equal(t, "2", v.String())
}

// TestStringOutput checks the canonical display format.
func TestStringOutput(t *testing.T) {
	m := mustInts(t, [][]int64{{2, 1}, {0, 5}})
	require.NoError(t, m.Set(1, 1, rational.MustNew(5, 2)))
	require.Equal(t, "[[2, 1],\n [0, 5/2]]", m.String())
	require.Equal(t, [][]string{{"2", "1"}, {"0", "5/2"}}, m.Strings())

	var nilM *matrix.Dense
	require.Equal(t, "[]", nilM.String())
}

// TestFloatsConstructors verifies float snapping and non-finite rejection.
func TestFloatsConstructors(t *testing.T) {
	m, err := matrix.NewFromFloats([][]float64{{0.5, 0.1}, {2, -3.25}})
	require.NoError(t, err)
	require.Equal(t, "[[1/2, 1/10],\n [2, -13/4]]", m.String())

	v, err := matrix.NewVectorFromFloats([]float64{1.5, 2})
	require.NoError(t, err)
	require.Equal(t, "[3/2, 2]", v.String())
}

// TestIdentity checks the identity constructor.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.True(t, id.Equal(mustInts(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})))
}
