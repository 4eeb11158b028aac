// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// GaussSeidel iterates like Jacobi but reuses the values already refreshed
// in the current sweep (j < i).
//
// Per-variable error: |x_new[i] − x_old[i]|.
//
// Options: WithTolerance, WithMaxIterations, WithPrecision.
// Errors: shape errors, ErrZeroDiagonal.
func GaussSeidel(a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	return run(opGaussSeidel, solver.MethodGaussSeidel, a, b, gaussSeidelSweep, absoluteChange, gaussSeidelIteration, opts)
}

// gaussSeidelSweep updates x in place; x already equals prev on entry.
func gaussSeidelSweep(a *mat.Dense, b, _, x *mat.VecDense) {
	n := b.Len()
	for i := 0; i < n; i++ {
		x.SetVec(i, (b.AtVec(i)-offDiagonal(a, x, i))/a.At(i, i))
	}
}

func absoluteChange(next, prev float64) float64 {
	return math.Abs(next - prev)
}
