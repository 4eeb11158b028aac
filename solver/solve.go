// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Solve dispatches to the direct method m. Thomas is run on the diagonals of
// a (which must be tridiagonal). Options that do not apply to m are ignored.
//
// Errors: ErrNotDirect for jacobi and gauss-seidel, ErrUnknownMethod for any
// other unrecognized name, plus the chosen method's own errors.
func Solve(m Method, a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	switch m {
	case MethodGauss:
		return Gauss(a, b, opts...)
	case MethodGaussJordan:
		return GaussJordan(a, b, opts...)
	case MethodLU:
		return LU(a, b)
	case MethodCholesky:
		return Cholesky(a, b, opts...)
	case MethodThomas:
		return ThomasMatrix(a, b)
	case MethodJacobi, MethodGaussSeidel:
		return nil, solverErrorf(opSolve, fmt.Errorf("%q: %w", m, ErrNotDirect))
	default:
		return nil, solverErrorf(opSolve, fmt.Errorf("%q: %w", m, ErrUnknownMethod))
	}
}
