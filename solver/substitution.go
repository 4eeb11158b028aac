// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// Symbols used in substitution steps.
const (
	symbolForward  = "y"
	symbolBackward = "x"
)

// substituteForward solves the lower-triangular system L·y = b top-down.
// A zero diagonal entry yields y[i] = 0 and a warning.
func substituteForward(l [][]rational.Value, b matrix.Vector, rec *trace.Recorder, w *warnings) matrix.Vector {
	n := len(b)
	y := matrix.Zeros(n)
	for i := 0; i < n; i++ {
		sum := rational.Zero()
		for j := 0; j < i; j++ {
			sum = sum.Add(l[i][j].Mul(y[j]))
		}
		y[i] = solveOne(symbolForward, i, b[i], sum, l[i][i], y, rec, w)
	}

	return y
}

// substituteBackward solves the upper-triangular system U·x = y bottom-up.
// A zero diagonal entry yields x[i] = 0 and a warning.
func substituteBackward(u [][]rational.Value, y matrix.Vector, rec *trace.Recorder, w *warnings) matrix.Vector {
	n := len(y)
	x := matrix.Zeros(n)
	for i := n - 1; i >= 0; i-- {
		sum := rational.Zero()
		for j := i + 1; j < n; j++ {
			sum = sum.Add(u[i][j].Mul(x[j]))
		}
		x[i] = solveOne(symbolBackward, i, y[i], sum, u[i][i], x, rec, w)
	}

	return x
}

// solveOne computes (rhs − sum) / div into out[i] and records the step.
func solveOne(symbol string, i int, rhs, sum, div rational.Value, out matrix.Vector,
	rec *trace.Recorder, w *warnings) rational.Value {
	step := trace.Substitute{Symbol: symbol, Index: i, RHS: rhs, Sum: sum, Divisor: div}
	if div.IsZero() {
		w.addf("pivot is 0 in row %d, singular matrix: %s[%d] set to 0", i+1, symbol, i+1)
		step.Degenerate = true
		step.Value = rational.Zero()
	} else {
		step.Value = mustQuo(rhs.Sub(sum), div)
	}
	out[i] = step.Value
	step.Vector = out
	rec.Append(step)

	return step.Value
}
