// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
)

// Residual returns Σ (A·x − b)ᵢ² in exact arithmetic. The value is the
// squared Euclidean norm, so no square root (and no rounding) is involved.
//
// Errors: shape errors from matrix.ValidateSystem, ErrDimensionMismatch when
// len(x) ≠ A.Cols().
func Residual(a *matrix.Dense, x, b matrix.Vector) (rational.Value, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return rational.Zero(), solverErrorf(opResidual, err)
	}
	ax, err := matrix.MulVec(a, x)
	if err != nil {
		return rational.Zero(), solverErrorf(opResidual, err)
	}
	sum := rational.Zero()
	for i := range ax {
		d := ax[i].Sub(b[i])
		sum = sum.Add(d.Mul(d))
	}

	return sum, nil
}

// attachResidual sets res.Residual; the inputs were validated by the caller.
func attachResidual(res *Result, a *matrix.Dense, b matrix.Vector) error {
	r, err := Residual(a, res.Solution.Vector, b)
	if err != nil {
		return err
	}
	res.Residual = &r

	return nil
}
