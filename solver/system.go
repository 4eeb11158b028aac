// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
)

// system is the private working copy [A | b] mutated by the elimination
// family. Callers' inputs are never touched.
type system struct {
	n int
	a [][]rational.Value
	b matrix.Vector
}

// newSystem copies a and b. Both are assumed validated.
func newSystem(a *matrix.Dense, b matrix.Vector) *system {
	return &system{n: a.Rows(), a: a.ToRows(), b: b.Clone()}
}

// pivotRow returns the row r ≥ k with the largest |a[r][k]|; ties keep the
// lowest index.
func (s *system) pivotRow(k int) int {
	best := k
	for i := k + 1; i < s.n; i++ {
		if s.a[i][k].CmpAbs(s.a[best][k]) > 0 {
			best = i
		}
	}

	return best
}

// swap exchanges rows i and k of both A and b.
func (s *system) swap(i, k int) {
	s.a[i], s.a[k] = s.a[k], s.a[i]
	s.b[i], s.b[k] = s.b[k], s.b[i]
}

// subtract performs row[target] ← row[target] − factor·row[source] on
// columns ≥ from and on b.
func (s *system) subtract(target, source int, factor rational.Value, from int) {
	for j := from; j < s.n; j++ {
		s.a[target][j] = s.a[target][j].Sub(factor.Mul(s.a[source][j]))
	}
	s.b[target] = s.b[target].Sub(factor.Mul(s.b[source]))
}

// divide performs row[row] ← row[row] / d on columns ≥ from and on b.
// d must be non-zero.
func (s *system) divide(row int, d rational.Value, from int) {
	for j := from; j < s.n; j++ {
		s.a[row][j] = mustQuo(s.a[row][j], d)
	}
	s.b[row] = mustQuo(s.b[row], d)
}

// augmented snapshots [A | b].
func (s *system) augmented() *matrix.Dense {
	rows := make([][]rational.Value, s.n)
	for i := range rows {
		row := make([]rational.Value, s.n+1)
		copy(row, s.a[i])
		row[s.n] = s.b[i]
		rows[i] = row
	}

	return mustDense(rows)
}

// mustQuo divides by a divisor the caller has already checked for zero.
func mustQuo(x, d rational.Value) rational.Value {
	q, err := x.Quo(d)
	if err != nil {
		panic("solver: internal division by zero")
	}

	return q
}

// mustDense builds a matrix from rows that are rectangular by construction.
func mustDense(rows [][]rational.Value) *matrix.Dense {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		panic("solver: internal shape error: " + err.Error())
	}

	return m
}

// rowVector copies one row.
func rowVector(row []rational.Value) matrix.Vector {
	return append(matrix.Vector(nil), row...)
}
