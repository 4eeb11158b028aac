// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// GaussJordan reduces [A | b] to [I | x].
//
// Implementation:
//   - Stage 1: Validate and copy [A | b].
//   - Stage 2: For each column k: optional partial pivoting (PivotSwap), then
//     divide row k by its pivot (Normalize), then clear column k in every
//     other row (one Eliminate step per row).
//   - Stage 3: b holds x.
//
// A zero pivot cannot be normalized: the column is skipped with an Info step
// and a warning, and its unknown is reported as 0. The residual then shows
// how far that best-effort answer is from a true solution.
//
// Options: WithPivoting.
// Complexity: O(n³) rational operations.
func GaussJordan(a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opGaussJordan, err)
	}
	o := gatherOptions(opts...)

	s := newSystem(a, b)
	rec := trace.NewRecorder()
	var w warnings
	skipped := make([]bool, s.n)

	var k, i int
	for k = 0; k < s.n; k++ {
		if o.pivoting {
			if p := s.pivotRow(k); p != k {
				s.swap(k, p)
				rec.Append(trace.PivotSwap{
					Column:    k,
					From:      p,
					To:        k,
					Pivot:     trace.Pivot{Row: k, Value: s.a[k][k]},
					Augmented: s.augmented(),
				})
			}
		}

		pivot := s.a[k][k]
		if pivot.IsZero() {
			w.addf("pivot is 0 in row %d, possible singular matrix", k+1)
			skipped[k] = true
			rec.Append(trace.Info{
				Label:  fmt.Sprintf("column %d skipped", k+1),
				Text:   fmt.Sprintf("Pivot in column %d is 0; the column cannot be reduced and %s is set to 0.", k+1, VariableNames(s.n)[k]),
				Matrix: s.augmented(),
				Pivot:  &trace.Pivot{Row: k, Value: pivot},
			})
			continue
		}

		s.divide(k, pivot, k)
		rec.Append(trace.Normalize{Row: k, Divisor: pivot, Augmented: s.augmented()})

		for i = 0; i < s.n; i++ {
			if i == k {
				continue
			}
			factor := s.a[i][k]
			s.subtract(i, k, factor, k)
			rec.Append(trace.Eliminate{
				Target:    i,
				Source:    k,
				Factor:    factor,
				Pivot:     trace.Pivot{Row: k, Value: rational.One()},
				Augmented: s.augmented(),
			})
		}
	}

	x := s.b.Clone()
	for k = range x {
		if skipped[k] {
			x[k] = rational.Zero()
		}
	}

	res := newResult(MethodGaussJordan, rec, x, w)
	if err := attachResidual(res, a, b); err != nil {
		return nil, solverErrorf(opGaussJordan, err)
	}

	return res, nil
}
