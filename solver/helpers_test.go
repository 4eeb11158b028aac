package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
)

func dense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

func vec(xs ...int64) matrix.Vector { return matrix.NewVectorFromInts(xs...) }

// requireVector compares element-wise by exact value.
func requireVector(t *testing.T, want []string, got matrix.Vector) {
	t.Helper()
	require.Equal(t, want, got.Strings())
}

// requireZeroResidual asserts an exact zero residual.
func requireZeroResidual(t *testing.T, r *rational.Value) {
	t.Helper()
	require.NotNil(t, r)
	require.True(t, r.IsZero(), "residual %s", r)
}
