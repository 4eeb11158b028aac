// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// Thomas solves a tridiagonal system given by its three diagonals:
// sub (a, length n−1, below the diagonal), diag (b, length n), sup (c,
// length n−1, above the diagonal) and rhs (d, length n).
//
// Implementation:
//   - Stage 1: Validate lengths; copy diag and rhs.
//   - Stage 2: Forward sweep for i = 1..n−1: m = a[i−1]/b[i−1],
//     b[i] −= m·c[i−1], d[i] −= m·d[i−1] (one Eliminate step per row,
//     carrying the current b and d).
//   - Stage 3: Back substitution x[n−1] = d[n−1]/b[n−1],
//     x[i] = (d[i] − c[i]·x[i+1]) / b[i].
//   - Stage 4: Exact residual against the rebuilt matrix.
//
// A zero in the modified diagonal is reported as a warning; the multiplier
// (or unknown) is taken as 0.
//
// Errors: matrix.ErrInvalidDimensions (n = 0), matrix.ErrDimensionMismatch.
// Complexity: O(n).
func Thomas(sub, diag, sup, rhs matrix.Vector) (*Result, error) {
	n := len(diag)
	if n == 0 {
		return nil, solverErrorf(opThomas, fmt.Errorf("empty diagonal: %w", matrix.ErrInvalidDimensions))
	}
	if len(sub) != n-1 || len(sup) != n-1 || len(rhs) != n {
		return nil, solverErrorf(opThomas, fmt.Errorf("lengths sub=%d diag=%d sup=%d rhs=%d: %w",
			len(sub), n, len(sup), len(rhs), matrix.ErrDimensionMismatch))
	}

	b := diag.Clone()
	d := rhs.Clone()
	rec := trace.NewRecorder()
	var w warnings

	for i := 1; i < n; i++ {
		m := rational.Zero()
		if b[i-1].IsZero() {
			w.addf("pivot is 0 in row %d, possible singular matrix", i)
		} else {
			m = mustQuo(sub[i-1], b[i-1])
		}
		b[i] = b[i].Sub(m.Mul(sup[i-1]))
		d[i] = d[i].Sub(m.Mul(d[i-1]))
		rec.Append(trace.Eliminate{
			Target:   i,
			Source:   i - 1,
			Factor:   m,
			Pivot:    trace.Pivot{Row: i - 1, Value: b[i-1]},
			Diagonal: b,
			RHS:      d,
		})
	}

	x := matrix.Zeros(n)
	for i := n - 1; i >= 0; i-- {
		sum := rational.Zero()
		if i < n-1 {
			sum = sup[i].Mul(x[i+1])
		}
		solveOne(symbolBackward, i, d[i], sum, b[i], x, rec, &w)
	}

	res := newResult(MethodThomas, rec, x, w)
	a, err := matrix.FromTridiagonal(sub, diag, sup)
	if err != nil {
		return nil, solverErrorf(opThomas, err)
	}
	if err = attachResidual(res, a, rhs); err != nil {
		return nil, solverErrorf(opThomas, err)
	}

	return res, nil
}

// ThomasMatrix extracts the three diagonals of a tridiagonal A and runs
// Thomas.
//
// Errors: shape errors, matrix.ErrNotTridiagonal.
func ThomasMatrix(a *matrix.Dense, b matrix.Vector) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opThomas, err)
	}
	sub, diag, sup, err := matrix.Tridiagonal(a)
	if err != nil {
		return nil, solverErrorf(opThomas, err)
	}

	return Thomas(sub, diag, sup, b)
}
