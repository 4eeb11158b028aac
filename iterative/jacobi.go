// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// Jacobi iterates x_new[i] = (b[i] − Σ_{j≠i} A[i][j]·x_old[j]) / A[i][i]
// using only the previous full iterate.
//
// Per-variable error: |x_new[i] − x_old[i]| / |x_new[i]|, 0 when x_new[i] = 0.
//
// Options: WithTolerance, WithMaxIterations, WithPrecision.
// Errors: shape errors, ErrZeroDiagonal.
// Complexity: O(k·n²) for k iterations.
func Jacobi(a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	return run(opJacobi, solver.MethodJacobi, a, b, jacobiSweep, relativeChange, jacobiIteration, opts)
}

func jacobiSweep(a *mat.Dense, b, prev, x *mat.VecDense) {
	n := b.Len()
	for i := 0; i < n; i++ {
		x.SetVec(i, (b.AtVec(i)-offDiagonal(a, prev, i))/a.At(i, i))
	}
}

func relativeChange(next, prev float64) float64 {
	if next == 0 {
		return 0
	}

	return math.Abs(next-prev) / math.Abs(next)
}
