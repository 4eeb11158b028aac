// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// Gauss solves A·x = b by Gaussian elimination followed by back substitution.
//
// Implementation:
//   - Stage 1: Validate A square, len(b) = n; copy [A | b].
//   - Stage 2: For each column k < n−1: optionally swap in the row with the
//     largest |a[r][k]| (PivotSwap step), then for every row below subtract
//     the multiple a[i][k]/a[k][k] of row k (one Eliminate step per row).
//     A zero pivot is reported as "possible singular matrix" and its
//     multipliers are taken as 0.
//   - Stage 3: Back substitution (one Substitute step per unknown); a zero
//     diagonal sets the unknown to 0 with a warning.
//   - Stage 4: Exact residual against the original A and b.
//
// Options: WithPivoting.
// Complexity: O(n³) rational operations.
func Gauss(a *matrix.Dense, b matrix.Vector, opts ...Option) (*Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(opGauss, err)
	}
	o := gatherOptions(opts...)

	s := newSystem(a, b)
	rec := trace.NewRecorder()
	var w warnings

	var k, i int
	for k = 0; k < s.n-1; k++ {
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
		}
		for i = k + 1; i < s.n; i++ {
			factor := rational.Zero()
			if !pivot.IsZero() {
				factor = mustQuo(s.a[i][k], pivot)
			}
			s.subtract(i, k, factor, k)
			rec.Append(trace.Eliminate{
				Target:    i,
				Source:    k,
				Factor:    factor,
				Pivot:     trace.Pivot{Row: k, Value: pivot},
				Augmented: s.augmented(),
			})
		}
	}

	x := substituteBackward(s.a, s.b, rec, &w)

	res := newResult(MethodGauss, rec, x, w)
	if err := attachResidual(res, a, b); err != nil {
		return nil, solverErrorf(opGauss, err)
	}

	return res, nil
}
