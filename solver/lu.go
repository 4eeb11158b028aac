// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// LUDecompose factors A = L·U with Doolittle's scheme: L is unit lower
// triangular, U is upper triangular. There is no pivoting.
//
// Implementation:
//   - Stage 1: Validate A (not nil, square); start L as the identity.
//   - Stage 2: For i = 0..n−1, build row i of U, check U[i][i] ≠ 0, then
//     build column i of L below the diagonal.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (U[i][i] = 0 for any i,
// including the last one).
// Complexity: O(n³) rational operations.
func LUDecompose(a *matrix.Dense) (l, u *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}
	lr, ur, err := doolittle(a.ToRows(), trace.NewRecorder())
	if err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}

	return mustDense(lr), mustDense(ur), nil
}

// doolittle runs the factorization row by row: for row i it first builds
// L[i][0..i-1] from the finished rows of U, then U[i][i..n-1]. One Info step
// is recorded per built row of L (rows 2..n; row 1 is e₁) and per row of U.
func doolittle(a [][]rational.Value, rec *trace.Recorder) (l, u [][]rational.Value, err error) {
	n := len(a)
	l = make([][]rational.Value, n)
	u = make([][]rational.Value, n)
	for i := range a {
		l[i] = make([]rational.Value, n)
		u[i] = make([]rational.Value, n)
		l[i][i] = rational.One()
	}

	var i, j, k int
	var sum rational.Value
	for i = 0; i < n; i++ {
		if i > 0 {
			for j = 0; j < i; j++ {
				sum = rational.Zero()
				for k = 0; k < j; k++ {
					sum = sum.Add(l[i][k].Mul(u[k][j]))
				}
				l[i][j] = mustQuo(a[i][j].Sub(sum), u[j][j])
			}
			rec.Append(trace.Info{
				Label:  fmt.Sprintf("L row %d", i+1),
				Text:   fmt.Sprintf("Row %d of L: L[%d][j] = (A[%d][j] - Σ L[%d][k]·U[k][j]) / U[j][j].", i+1, i+1, i+1, i+1),
				Vector: rowVector(l[i]),
			})
		}

		for j = i; j < n; j++ {
			sum = rational.Zero()
			for k = 0; k < i; k++ {
				sum = sum.Add(l[i][k].Mul(u[k][j]))
			}
			u[i][j] = a[i][j].Sub(sum)
		}
		rec.Append(trace.Info{
			Label:  fmt.Sprintf("U row %d", i+1),
			Text:   fmt.Sprintf("Row %d of U: U[%d][j] = A[%d][j] - Σ L[%d][k]·U[k][j].", i+1, i+1, i+1, i+1),
			Vector: rowVector(u[i]),
			Pivot:  &trace.Pivot{Row: i, Value: u[i][i]},
		})

		// U[i][i] divides every later row of L
		if u[i][i].IsZero() {
			return nil, nil, fmt.Errorf("zero pivot U[%d][%d]: %w", i+1, i+1, ErrSingular)
		}
	}

	return l, u, nil
}

// LUSolve solves L·U·x = b given factors from LUDecompose (or any lower and
// upper triangular pair): forward substitution L·y = b, then back
// substitution U·x = y. Zero diagonal entries yield 0 for that unknown.
//
// Errors: shape errors when L, U are not n×n or len(b) ≠ n.
func LUSolve(l, u *matrix.Dense, b matrix.Vector) (matrix.Vector, error) {
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, solverErrorf(opLUSolve, err)
	}
	if err := matrix.ValidateSystem(u, b); err != nil {
		return nil, solverErrorf(opLUSolve, err)
	}
	rec := trace.NewRecorder()
	var w warnings
	y := substituteForward(l.ToRows(), b, rec, &w)

	return substituteBackward(u.ToRows(), y, rec, &w), nil
}

// LU solves A·x = b through A = L·U.
//
// Implementation:
//   - Stage 1: Doolittle factorization, row by row (an Info step for each
//     built row of L and of U, then the finished L and U).
//   - Stage 2: Forward substitution L·y = b (Substitute steps on "y").
//   - Stage 3: Back substitution U·x = y (Substitute steps on "x").
//   - Stage 4: Exact residual.
//
// Errors: shape errors, ErrSingular.
func LU(a *matrix.Dense, b matrix.Vector) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opLU, err)
	}
	rec := trace.NewRecorder()
	l, u, err := doolittle(a.ToRows(), rec)
	if err != nil {
		return nil, solverErrorf(opLU, err)
	}
	lm, um := mustDense(l), mustDense(u)
	rec.Append(trace.Info{Label: "L", Text: "Matrix L obtained:", Matrix: lm})
	rec.Append(trace.Info{Label: "U", Text: "Matrix U obtained:", Matrix: um})

	var w warnings
	y := substituteForward(l, b, rec, &w)
	x := substituteBackward(u, y, rec, &w)

	res := newResult(MethodLU, rec, x, w)
	res.L, res.U = lm, um
	if err = attachResidual(res, a, b); err != nil {
		return nil, solverErrorf(opLU, err)
	}

	return res, nil
}
