package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/console"
	"github.com/katalvlaran/linsys/solver"
)

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := console.Run(strings.NewReader(input), &out, api.NewDefaults())

	return out.String(), err
}

func TestRun_GaussVerbose(t *testing.T) {
	out, err := run(t, "2\n2 1\n1 3\n4 7\ngauss\ny\ny\n")
	require.NoError(t, err)
	require.Contains(t, out, "Step 1: R2 ← R2 - 1/2·R1")
	require.Contains(t, out, "[[2, 1, 4],\n [0, 5/2, 5]]")
	require.Contains(t, out, "Solution: x = 1, y = 2")
	require.Contains(t, out, "Residual: 0")
}

func TestRun_LUFactors(t *testing.T) {
	out, err := run(t, "2\n4 3\n6 3\n10 12\nlu\nn\n")
	require.NoError(t, err)
	require.NotContains(t, out, "Step 1:")
	require.Contains(t, out, "L: [[1, 0],\n [3/2, 1]]")
	require.Contains(t, out, "Solution: x = 1, y = 2")
}

func TestRun_Fractions(t *testing.T) {
	out, err := run(t, "1\n1/3\n2/3\ngauss-jordan\nn\nn\n")
	require.NoError(t, err)
	require.Contains(t, out, "Solution: x = 2")
}

func TestRun_Iterative(t *testing.T) {
	out, err := run(t, "2\n10 1\n1 10\n11 11\njacobi\ny\n")
	require.NoError(t, err)
	require.Contains(t, out, "max error")
	require.Contains(t, out, "Converged in")
}

func TestRun_Errors(t *testing.T) {
	out, err := run(t, "2\n1 2 3\n")
	require.ErrorIs(t, err, console.ErrInput)
	require.Contains(t, out, "Error: each row must have n values.")

	_, err = run(t, "0\n")
	require.ErrorIs(t, err, console.ErrInput)

	_, err = run(t, "1\n1\n1\nsimplex\n")
	require.ErrorIs(t, err, console.ErrInput)

	_, err = run(t, "2\n1 0\n")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	out, err = run(t, "2\n1 2\n2 4\n3 6\nlu\nn\n")
	require.ErrorIs(t, err, solver.ErrSingular)
	require.Contains(t, out, "Error:")
}

func TestRun_NonTridiagonalThomas(t *testing.T) {
	out, err := run(t, "3\n1 0 1\n0 1 0\n0 0 1\n1 1 1\nthomas\nn\n")
	require.Error(t, err)
	require.Contains(t, out, "tridiagonal")
}
