// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var errNoEigen = errors.New("iterative: eigen decomposition did not converge")

// iterationFunc builds the iteration matrix B of x_{k+1} = B·x_k + c.
type iterationFunc func(a *mat.Dense) (*mat.Dense, error)

// jacobiIteration returns B = −D⁻¹(L + U).
func jacobiIteration(a *mat.Dense) (*mat.Dense, error) {
	n, _ := a.Dims()
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d := a.At(i, i)
		for j := 0; j < n; j++ {
			if j != i {
				b.Set(i, j, -a.At(i, j)/d)
			}
		}
	}

	return b, nil
}

// gaussSeidelIteration returns B = −(D + L)⁻¹·U.
func gaussSeidelIteration(a *mat.Dense) (*mat.Dense, error) {
	n, _ := a.Dims()
	lower := mat.NewDense(n, n, nil)
	upper := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j <= i {
				lower.Set(i, j, a.At(i, j))
			} else {
				upper.Set(i, j, -a.At(i, j))
			}
		}
	}
	var b mat.Dense
	if err := b.Solve(lower, upper); err != nil {
		return nil, err
	}

	return &b, nil
}

// spectralRadius returns max |λ| over the eigenvalues of b. The iteration
// converges from every start exactly when it is below 1.
func spectralRadius(b *mat.Dense) (float64, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(b, mat.EigenNone); !ok {
		return 0, errNoEigen
	}
	var rho float64
	for _, v := range eig.Values(nil) {
		if abs := cmplx.Abs(v); abs > rho {
			rho = abs
		}
	}

	return rho, nil
}
