package iterative_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

func dominant(t *testing.T) (*matrix.Dense, matrix.Vector) {
	t.Helper()
	a, err := matrix.NewFromInts([][]int64{{10, 1, 1}, {1, 10, 1}, {1, 1, 10}})
	require.NoError(t, err)

	return a, matrix.NewVectorFromInts(12, 12, 12)
}

func TestJacobi_Converges(t *testing.T) {
	a, b := dominant(t)

	res, err := iterative.Jacobi(a, b)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.True(t, res.DiagonallyDominant)
	require.Empty(t, res.Warnings)
	require.Equal(t, solver.MethodJacobi, res.Method)
	require.Equal(t, []string{"x", "y", "z"}, res.Names)
	require.Len(t, res.Table, res.Iterations)
	require.Contains(t, res.Note, "Converged")
	for _, v := range res.Solution {
		require.InDelta(t, 1.0, v, 1e-3)
	}
	require.Less(t, res.Residual, 1e-6)

	// first sweep from zero: x = b / diag
	first := res.Table[0]
	require.Equal(t, 1, first.Iteration)
	require.Equal(t, []float64{1.2, 1.2, 1.2}, first.Values)
	require.Equal(t, []float64{1, 1, 1}, first.Errors)

	// only the last row is below tolerance
	last := res.Table[len(res.Table)-1]
	require.Less(t, last.MaxError, iterative.DefaultTolerance)
	for _, row := range res.Table[:len(res.Table)-1] {
		require.GreaterOrEqual(t, row.MaxError, iterative.DefaultTolerance)
	}
}

func TestGaussSeidel_NotSlowerThanJacobi(t *testing.T) {
	a, b := dominant(t)

	j, err := iterative.Jacobi(a, b)
	require.NoError(t, err)
	gs, err := iterative.GaussSeidel(a, b)
	require.NoError(t, err)
	require.True(t, gs.Converged)
	require.LessOrEqual(t, gs.Iterations, j.Iterations)

	// second variable already sees the refreshed first one
	require.Equal(t, []float64{1.2, 1.08, 0.972}, gs.Table[0].Values)
	require.Len(t, gs.MaxErrors(), gs.Iterations)
}

func TestIterative_NonConvergence(t *testing.T) {
	a, err := matrix.NewFromInts([][]int64{{1, 2}, {3, 1}})
	require.NoError(t, err)
	b := matrix.NewVectorFromInts(1, 1)

	for _, m := range []solver.Method{solver.MethodJacobi, solver.MethodGaussSeidel} {
		res, err := iterative.Solve(m, a, b, iterative.WithMaxIterations(10))
		require.NoError(t, err)
		require.False(t, res.Converged)
		require.False(t, res.DiagonallyDominant)
		require.NotEmpty(t, res.Warnings)
		require.Len(t, res.Table, 10)
		require.Contains(t, res.Note, "Did not converge within 10 iterations")
	}
}

func TestJacobi_Diverges(t *testing.T) {
	a, err := matrix.NewFromInts([][]int64{{1, 1000000}, {1000000, 1}})
	require.NoError(t, err)

	res, err := iterative.Jacobi(a, matrix.NewVectorFromInts(1, 1), iterative.WithMaxIterations(100))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Contains(t, res.Note, "Diverged at iteration")
	require.Less(t, res.Iterations, 100)
	require.Len(t, res.Table, res.Iterations)

	last := res.Table[len(res.Table)-1]
	nonFinite := false
	for _, v := range last.Values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			nonFinite = true
		}
	}
	require.True(t, nonFinite)

	// the table still encodes, with null in place of ±Inf and NaN
	data, err := json.Marshal(res.Table)
	require.NoError(t, err)
	var rows []struct {
		Values []*float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, len(res.Table))
	require.Contains(t, rows[len(rows)-1].Values, (*float64)(nil))
	require.NotNil(t, rows[0].Values[0])
	require.Equal(t, 1.0, *rows[0].Values[0])
}

func TestIterative_Rejects(t *testing.T) {
	a, err := matrix.NewFromInts([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	_, err = iterative.Jacobi(a, matrix.NewVectorFromInts(1, 1))
	require.ErrorIs(t, err, iterative.ErrZeroDiagonal)
	_, err = iterative.GaussSeidel(a, matrix.NewVectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = iterative.Solve(solver.MethodGauss, a, matrix.NewVectorFromInts(1, 1))
	require.ErrorIs(t, err, solver.ErrUnknownMethod)

	require.Panics(t, func() { iterative.WithTolerance(0) })
	require.Panics(t, func() { iterative.WithMaxIterations(0) })
	require.Panics(t, func() { iterative.WithPrecision(-1) })
}

func TestIterative_Options(t *testing.T) {
	a, b := dominant(t)

	loose, err := iterative.Jacobi(a, b, iterative.WithTolerance(1e-1))
	require.NoError(t, err)
	tight, err := iterative.Jacobi(a, b, iterative.WithTolerance(1e-10))
	require.NoError(t, err)
	require.Less(t, loose.Iterations, tight.Iterations)

	capped, err := iterative.Jacobi(a, b, iterative.WithTolerance(1e-10), iterative.WithMaxIterations(3))
	require.NoError(t, err)
	require.False(t, capped.Converged)
	require.Equal(t, 3, capped.Iterations)

	coarse, err := iterative.GaussSeidel(a, b, iterative.WithPrecision(1))
	require.NoError(t, err)
	require.Equal(t, []float64{1.2, 1.1, 1}, coarse.Table[0].Values)
}

func TestIterative_SpectralRadius(t *testing.T) {
	a, b := dominant(t)
	res, err := iterative.Jacobi(a, b)
	require.NoError(t, err)
	require.True(t, res.SpectralRadiusKnown)
	// B = -0.1·(J − I): eigenvalues −0.2, 0.1, 0.1
	require.InDelta(t, 0.2, res.SpectralRadius, 1e-9)

	bad, err := matrix.NewFromInts([][]int64{{1, 2}, {3, 1}})
	require.NoError(t, err)
	rhs := matrix.NewVectorFromInts(1, 1)

	j, err := iterative.Jacobi(bad, rhs, iterative.WithMaxIterations(5))
	require.NoError(t, err)
	require.InDelta(t, 2.449489742783178, j.SpectralRadius, 1e-9) // √6

	gs, err := iterative.GaussSeidel(bad, rhs, iterative.WithMaxIterations(5))
	require.NoError(t, err)
	// −(D+L)⁻¹U = [[0, −2], [0, 6]]
	require.InDelta(t, 6, gs.SpectralRadius, 1e-9)
	require.Contains(t, gs.Warnings[len(gs.Warnings)-1], "spectral radius")
}
