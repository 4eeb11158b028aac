// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// sweepFunc refreshes x in place from the previous iterate prev.
type sweepFunc func(a *mat.Dense, b, prev, x *mat.VecDense)

// errorFunc measures the change of one variable between iterates.
type errorFunc func(next, prev float64) float64

// run is the loop shared by both methods.
func run(tag string, m solver.Method, a *matrix.Dense, b matrix.Vector,
	sweep sweepFunc, change errorFunc, iteration iterationFunc, opts []Option) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, iterativeErrorf(tag, err)
	}
	o := gatherOptions(opts...)

	A, B := toGonum(a, b)
	n, _ := A.Dims()
	for i := 0; i < n; i++ {
		if A.At(i, i) == 0 {
			return nil, iterativeErrorf(tag, fmt.Errorf("A[%d][%d]: %w", i+1, i+1, ErrZeroDiagonal))
		}
	}

	res := &Result{
		Method:             m,
		N:                  n,
		Names:              solver.VariableNames(n),
		DiagonallyDominant: diagonallyDominant(A),
	}
	if !res.DiagonallyDominant {
		res.Warnings = append(res.Warnings, "matrix is not diagonally dominant; convergence is not guaranteed")
	}
	if bm, err := iteration(A); err == nil {
		if rho, err := spectralRadius(bm); err == nil {
			res.SpectralRadius = rho
			res.SpectralRadiusKnown = true
			if rho >= 1 {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("spectral radius of the iteration matrix is %.4g ≥ 1; the iteration is not expected to converge", rho))
			}
		}
	}

	x := mat.NewVecDense(n, nil)
	prev := mat.NewVecDense(n, nil)
	var i, it int
	for it = 1; it <= o.maxIterations; it++ {
		prev.CopyVec(x)
		sweep(A, B, prev, x)

		row := Row{Iteration: it, Values: make([]float64, n), Errors: make([]float64, n)}
		finite := true
		for i = 0; i < n; i++ {
			v := x.AtVec(i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				finite = false
			}
			row.Values[i] = round(v, o.precision)
			row.Errors[i] = change(v, prev.AtVec(i))
			if row.Errors[i] > row.MaxError || math.IsNaN(row.Errors[i]) {
				row.MaxError = row.Errors[i]
			}
		}
		res.Table = append(res.Table, row)
		res.Iterations = it

		if !finite {
			res.Note = fmt.Sprintf("Diverged at iteration %d: the iterate is no longer finite.", it)
			break
		}
		if row.MaxError < o.tolerance {
			res.Converged = true
			res.Note = fmt.Sprintf("Converged in %d iterations: every error is below %g.", it, o.tolerance)
			break
		}
	}
	if !res.Converged && res.Note == "" {
		res.Note = fmt.Sprintf("Did not converge within %d iterations (tolerance %g, last max error %g).",
			o.maxIterations, o.tolerance, res.Table[len(res.Table)-1].MaxError)
	}

	res.Solution = mat.Col(nil, 0, x)
	res.Residual = residual(A, B, x)

	return res, nil
}

// toGonum converts a validated rational system to float64.
func toGonum(a *matrix.Dense, b matrix.Vector) (*mat.Dense, *mat.VecDense) {
	n := a.Rows()
	data := make([]float64, 0, n*n)
	for _, row := range a.ToRows() {
		data = append(data, matrix.Vector(row).Float64s()...)
	}

	return mat.NewDense(n, n, data), mat.NewVecDense(n, b.Float64s())
}

// offDiagonal returns Σ_{j≠i} A[i][j]·x[j].
func offDiagonal(a *mat.Dense, x *mat.VecDense, i int) float64 {
	var s float64
	row := a.RawRowView(i)
	for j, v := range row {
		if j != i {
			s += v * x.AtVec(j)
		}
	}

	return s
}

// residual returns ‖A·x − b‖².
func residual(a *mat.Dense, b, x *mat.VecDense) float64 {
	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(&r, b)

	return mat.Dot(&r, &r)
}

func diagonallyDominant(a *mat.Dense) bool {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		var off float64
		for j, v := range a.RawRowView(i) {
			if j != i {
				off += math.Abs(v)
			}
		}
		if math.Abs(a.At(i, i)) < off {
			return false
		}
	}

	return true
}

func round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(decimals))

	return math.Round(v*p) / p
}
