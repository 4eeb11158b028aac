// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// CholeskyDecompose factors a symmetric positive-definite A = L·Lᵀ.
// approximate reports whether any diagonal entry of L is a rounded square
// root (see WithSqrtDenominator).
//
// Errors: shape errors, matrix.ErrAsymmetry, ErrNotPositiveDefinite.
// Complexity: O(n³) rational operations plus n square roots.
func CholeskyDecompose(a *matrix.Dense, opts ...Option) (l *matrix.Dense, approximate bool, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, false, solverErrorf(opCholesky, err)
	}
	if err = matrix.ValidateSymmetric(a); err != nil {
		return nil, false, solverErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)
	rows, approximate, err := cholesky(a.ToRows(), o, trace.NewRecorder())
	if err != nil {
		return nil, false, solverErrorf(opCholesky, err)
	}

	return mustDense(rows), approximate, nil
}

// cholesky builds L row by row:
//
//	L[i][i] = √(A[i][i] − Σ_{k<i} L[i][k]²)
//	L[i][j] = (A[i][j] − Σ_{k<j} L[i][k]·L[j][k]) / L[j][j]   for j < i
func cholesky(a [][]rational.Value, o Options, rec *trace.Recorder) (l [][]rational.Value, approximate bool, err error) {
	n := len(a)
	l = make([][]rational.Value, n)
	for i := range l {
		l[i] = make([]rational.Value, n)
	}

	var i, j, k int
	var sum rational.Value
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = rational.Zero()
			for k = 0; k < j; k++ {
				sum = sum.Add(l[i][k].Mul(l[j][k]))
			}
			if i != j {
				l[i][j] = mustQuo(a[i][j].Sub(sum), l[j][j])
				continue
			}
			radicand := a[i][i].Sub(sum)
			if radicand.Sign() <= 0 {
				return nil, false, fmt.Errorf("radicand %s at L[%d][%d]: %w", radicand, i+1, i+1, ErrNotPositiveDefinite)
			}
			root, exact, err := sqrtRational(radicand, o.sqrtDenominator)
			if err != nil {
				return nil, false, err
			}
			if !exact {
				approximate = true
			}
			l[i][i] = root
		}
		rec.Append(trace.Info{
			Label:  fmt.Sprintf("L row %d", i+1),
			Text:   fmt.Sprintf("Row %d of L; the diagonal entry is the square root of A[%d][%d] - Σ L[%d][k]².", i+1, i+1, i+1, i+1),
			Vector: rowVector(l[i]),
			Pivot:  &trace.Pivot{Row: i, Value: l[i][i]},
		})
	}

	return l, approximate, nil
}

// Cholesky solves a symmetric positive-definite system through A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: Validate shape and symmetry (no arithmetic happens on an
//     asymmetric input).
//   - Stage 2: Build L row by row (Info step per row), then record L and Lᵀ.
//   - Stage 3: Forward substitution L·y = b, back substitution Lᵀ·x = y.
//
// The residual is omitted: irrational square roots are rounded, so the
// solution is not exact in general. Result.Approximate tells whether any
// rounding actually happened.
//
// Options: WithSqrtDenominator.
// Errors: shape errors, matrix.ErrAsymmetry, ErrNotPositiveDefinite.
func Cholesky(a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opCholesky, err)
	}
	if err := matrix.ValidateSymmetric(a); err != nil {
		return nil, solverErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)

	rec := trace.NewRecorder()
	l, approximate, err := cholesky(a.ToRows(), o, rec)
	if err != nil {
		return nil, solverErrorf(opCholesky, err)
	}
	lm := mustDense(l)
	lt, err := matrix.Transpose(lm)
	if err != nil {
		return nil, solverErrorf(opCholesky, err)
	}
	rec.Append(trace.Info{Label: "L", Text: "Matrix L obtained:", Matrix: lm})
	rec.Append(trace.Info{Label: "Lᵀ", Text: "Matrix Lᵀ obtained:", Matrix: lt})

	var w warnings
	y := substituteForward(l, b, rec, &w)
	x := substituteBackward(lt.ToRows(), y, rec, &w)

	res := newResult(MethodCholesky, rec, x, w)
	res.L, res.U = lm, lt
	res.Approximate = approximate

	return res, nil
}
