// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating shape/nil/symmetry/band checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing (Tridiagonal
//    allocates only its three result vectors).
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Every comparison is exact; "zero" means rational zero.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen checks that len(v) == m.Rows(), i.e. v can be a right-hand side.
// Assumes m is not nil.
// Errors: ErrDimensionMismatch.
func ValidateVecLen(m *Dense, v Vector) error {
	if len(v) != m.r {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d vs %d)", len(v), m.r), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem is the composite check every square solver runs first:
// NotNil → Square → VecLen.
func ValidateSystem(m *Dense, b Vector) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	return ValidateVecLen(m, b)
}

// ValidateSymmetric checks m[i][j] == m[j][i] for all i < j.
// Assumes m is square.
// Errors: ErrAsymmetry naming the first offending pair.
func ValidateSymmetric(m *Dense) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if !m.data[i*m.c+j].Equal(m.data[j*m.c+i]) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsTridiagonal reports whether every entry with |i-j| > 1 is exactly zero.
// Assumes m is square.
func IsTridiagonal(m *Dense) bool {
	return ValidateTridiagonal(m) == nil
}

// ValidateTridiagonal is IsTridiagonal returning ErrNotTridiagonal with the
// first offending position.
func ValidateTridiagonal(m *Dense) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if (i-j > 1 || j-i > 1) && !m.data[i*m.c+j].IsZero() {
				return validatorErrorf(fmt.Sprintf("ValidateTridiagonal(%d,%d)", i, j), ErrNotTridiagonal)
			}
		}
	}

	return nil
}

// Tridiagonal validates m and extracts its three diagonals:
// sub (length n-1), diag (length n) and sup (length n-1).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotTridiagonal.
func Tridiagonal(m *Dense) (sub, diag, sup Vector, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, err
	}
	if err = ValidateTridiagonal(m); err != nil {
		return nil, nil, nil, err
	}
	n := m.r
	sub = make(Vector, n-1)
	diag = make(Vector, n)
	sup = make(Vector, n-1)
	for i := 0; i < n; i++ {
		diag[i] = m.data[i*n+i]
		if i > 0 {
			sub[i-1] = m.data[i*n+i-1]
		}
		if i < n-1 {
			sup[i] = m.data[i*n+i+1]
		}
	}

	return sub, diag, sup, nil
}

// FromTridiagonal rebuilds the dense n×n matrix from its three diagonals.
// Errors: ErrInvalidDimensions for an empty diag, ErrDimensionMismatch when
// len(sub) or len(sup) != len(diag)-1.
func FromTridiagonal(sub, diag, sup Vector) (*Dense, error) {
	n := len(diag)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	if len(sub) != n-1 || len(sup) != n-1 {
		return nil, validatorErrorf("FromTridiagonal", ErrDimensionMismatch)
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = diag[i]
		if i > 0 {
			m.data[i*n+i-1] = sub[i-1]
		}
		if i < n-1 {
			m.data[i*n+i+1] = sup[i]
		}
	}

	return m, nil
}
