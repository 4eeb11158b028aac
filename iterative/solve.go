// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// Solve dispatches to Jacobi or GaussSeidel. Any other method yields
// solver.ErrUnknownMethod.
func Solve(m solver.Method, a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	switch m {
	case solver.MethodJacobi:
		return Jacobi(a, b, opts...)
	case solver.MethodGaussSeidel:
		return GaussSeidel(a, b, opts...)
	default:
		return nil, fmt.Errorf("iterative: %q: %w", m, solver.ErrUnknownMethod)
	}
}
