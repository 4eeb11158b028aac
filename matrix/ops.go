// SPDX-License-Identifier: MIT
// Package matrix: exact kernels on Dense.
//
// Purpose:
//   - Provide the handful of operations the solvers and their tests need:
//     products, transpose, augmentation and elementary row operations.
//
// Notes:
//   - All kernels are deterministic (fixed i→j→k loop order) and never mutate
//     their operands, except the explicitly in-place row operations.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsys/rational"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opAugment   = "Augment"
	opSwapRows  = "SwapRows"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs C = A × B exactly.
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(r·k·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc := rational.Zero()
			for k = 0; k < a.c; k++ {
				acc = acc.Add(a.data[i*a.c+k].Mul(b.data[k*b.c+j]))
			}
			out.data[i*out.c+j] = acc
		}
	}

	return out, nil
}

// MulVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols.
func MulVec(m *Dense, x Vector) (Vector, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	y := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		acc := rational.Zero()
		for j := 0; j < m.c; j++ {
			acc = acc.Add(m.data[i*m.c+j].Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ as a new matrix.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]rational.Value, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Augment returns [m | b], the matrix with b appended as its last column.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(b) != Rows.
func Augment(m *Dense, b Vector) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAugment, ErrNilMatrix)
	}
	if len(b) != m.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	out := &Dense{r: m.r, c: m.c + 1, data: make([]rational.Value, m.r*(m.c+1))}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*out.c:i*out.c+m.c], m.data[i*m.c:(i+1)*m.c])
		out.data[i*out.c+m.c] = b[i]
	}

	return out, nil
}

// SwapRows exchanges rows i and k in place.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return matrixErrorf(opSwapRows, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}
